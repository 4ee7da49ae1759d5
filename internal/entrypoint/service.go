// Package entrypoint wraps the analyzer's three ranking algorithms behind
// a single strategy-selected operation.
package entrypoint

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfromboulder/viewmapper/internal/analyzer"
	"github.com/robfromboulder/viewmapper/internal/apperrors"
	"github.com/robfromboulder/viewmapper/internal/depgraph"
)

// Kind classifies why a vertex was suggested as an entry point.
type Kind string

const (
	HighImpact Kind = "HighImpact"
	LeafView   Kind = "LeafView"
	CentralHub Kind = "CentralHub"
)

// Suggestion is a single scored, typed entry-point suggestion.
type Suggestion struct {
	ViewName string
	Score    float64
	Reason   string
	Kind     Kind
}

const (
	strategyHighImpact = "high-impact"
	strategyLeafViews  = "leaf-views"
	strategyCentral    = "central-hubs"

	defaultLimit = 5
)

// SuggestEntryPoints dispatches to the strategy named by strategy
// (case-insensitive): "high-impact", "leaf-views", or "central-hubs". Any
// other value fails with InvalidArgumentError. A nil limit means the
// caller omitted it and defaultLimit (5) is used.
func SuggestEntryPoints(ctx context.Context, g *depgraph.Graph, strategy string, limitArg *int) ([]Suggestion, error) {
	limit := defaultLimit
	if limitArg != nil {
		limit = *limitArg
	}

	switch strings.ToLower(strategy) {
	case strategyHighImpact:
		ranked := analyzer.HighImpact(g, limit)
		out := make([]Suggestion, len(ranked))
		for i, r := range ranked {
			out[i] = Suggestion{
				ViewName: r.Label,
				Score:    r.Score,
				Reason:   fmt.Sprintf("%d views depend on this (foundational/core view)", int(r.Score)),
				Kind:     HighImpact,
			}
		}
		return out, nil

	case strategyLeafViews:
		leaves := analyzer.LeafViews(g)
		if limit < len(leaves) {
			leaves = leaves[:limit]
		}
		out := make([]Suggestion, len(leaves))
		for i, v := range leaves {
			out[i] = Suggestion{
				ViewName: v,
				Score:    0,
				Reason:   "Final output/report with no dependents",
				Kind:     LeafView,
			}
		}
		return out, nil

	case strategyCentral:
		ranked := analyzer.CentralHubs(g, limit)
		out := make([]Suggestion, len(ranked))
		for i, r := range ranked {
			out[i] = Suggestion{
				ViewName: r.Label,
				Score:    r.Score,
				Reason:   fmt.Sprintf("Central hub (centrality: %g) connecting sources to consumers", r.Score),
				Kind:     CentralHub,
			}
		}
		return out, nil

	default:
		return nil, apperrors.NewInvalidArgument("strategy", strategy)
	}
}
