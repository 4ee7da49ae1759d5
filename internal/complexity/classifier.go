// Package complexity classifies a schema's view count into one of four
// ordinal levels with accompanying guidance.
package complexity

import (
	"encoding/json"
	"fmt"
)

// Level is one of the four ordinal complexity levels, increasing.
type Level int

const (
	Simple Level = iota
	Moderate
	Complex
	VeryComplex
)

func (l Level) String() string {
	switch l {
	case Simple:
		return "Simple"
	case Moderate:
		return "Moderate"
	case Complex:
		return "Complex"
	case VeryComplex:
		return "VeryComplex"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders Level as its name, not its ordinal, for the
// tool-dispatch JSON contract.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses a Level from its name.
func (l *Level) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "Simple":
		*l = Simple
	case "Moderate":
		*l = Moderate
	case "Complex":
		*l = Complex
	case "VeryComplex":
		*l = VeryComplex
	default:
		return fmt.Errorf("unknown complexity level %q", name)
	}
	return nil
}

// SchemaComplexity is a schema's derived complexity assessment.
type SchemaComplexity struct {
	SchemaName          string
	ViewCount           int
	Level               Level
	RequiresEntryPoint  bool
	FullDiagramFeasible bool
	Guidance            string
}

// FromViewCount classifies schemaName's viewCount into a SchemaComplexity.
// It is a pure function of viewCount: monotone, with no side effects.
func FromViewCount(schemaName string, viewCount int) SchemaComplexity {
	sc := SchemaComplexity{SchemaName: schemaName, ViewCount: viewCount}
	switch {
	case viewCount < 20:
		sc.Level = Simple
		sc.RequiresEntryPoint = false
		sc.FullDiagramFeasible = true
		sc.Guidance = "Full diagram feasible."
	case viewCount < 100:
		sc.Level = Moderate
		sc.RequiresEntryPoint = false
		sc.FullDiagramFeasible = false
		sc.Guidance = "Suggest grouping by domain or iterative exploration."
	case viewCount < 500:
		sc.Level = Complex
		sc.RequiresEntryPoint = true
		sc.FullDiagramFeasible = false
		sc.Guidance = "Require focused exploration with an entry point."
	default:
		sc.Level = VeryComplex
		sc.RequiresEntryPoint = true
		sc.FullDiagramFeasible = false
		sc.Guidance = "Guided step-by-step exploration required."
	}
	return sc
}
