// Package engine orchestrates the single implicit lifecycle a loaded
// schema goes through: Empty -> Loading -> Ready.
package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/robfromboulder/viewmapper/internal/apperrors"
	"github.com/robfromboulder/viewmapper/internal/depgraph"
	"github.com/robfromboulder/viewmapper/internal/sqlast"
	"github.com/robfromboulder/viewmapper/internal/warehouse"
)

// State is the engine's lifecycle stage.
type State int

const (
	Empty State = iota
	Loading
	Ready
)

// Engine wraps the dependency graph and the host-loading path, logging
// each step through a logrus.FieldLogger.
type Engine struct {
	Graph  *depgraph.Graph
	Logger logrus.FieldLogger
	state  State
}

// NewEngine creates an empty engine. A nil logger falls back to logrus's
// standard logger.
func NewEngine(logger logrus.FieldLogger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{
		Graph:  depgraph.NewGraph(),
		Logger: logger,
		state:  Empty,
	}
}

// State reports the engine's current lifecycle stage.
func (e *Engine) State() State {
	return e.state
}

// AddView parses sql, extracts its dependencies, and wires an edge from
// each dependency to name. A parser failure is returned as a
// *apperrors.ParseError; the graph still gains name as a vertex either
// way.
func (e *Engine) AddView(name, sql string) error {
	if e.state == Empty {
		e.state = Loading
	}
	e.Graph.AddView(name)

	query, err := sqlast.Parse(sql)
	if err != nil {
		return apperrors.NewParseError(name, err)
	}

	for _, ref := range depgraph.ExtractReferences(query) {
		e.Graph.AddEdge(ref.Label(), name)
		e.Logger.WithFields(logrus.Fields{
			"dependency": ref.Label(),
			"dependent":  name,
		}).Debug("addView: edge added")
	}
	return nil
}

// LoadDataset calls AddView for every view in order, logging and skipping
// any that fail to parse. It transitions the engine to Ready once done.
func (e *Engine) LoadDataset(views []warehouse.View) (loaded int, skipped []string) {
	for _, v := range views {
		if err := e.AddView(v.Name, v.SQL); err != nil {
			e.Logger.WithError(err).Warnf("skipping view with parse error: %s", v.Name)
			skipped = append(skipped, v.Name)
			continue
		}
		loaded++
	}
	e.MarkReady()
	e.Logger.WithFields(logrus.Fields{
		"loaded":  loaded,
		"skipped": len(skipped),
	}).Info("load complete")
	return loaded, skipped
}

// MarkReady signals end-of-load.
func (e *Engine) MarkReady() {
	if e.state == Loading {
		e.state = Ready
	}
}

// Summary renders a two-line load banner: a success line and the vertex
// count.
func (e *Engine) Summary() string {
	return fmt.Sprintf("Graph built successfully.\nVertices: %d", e.Graph.VertexCount())
}
