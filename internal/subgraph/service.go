// Package subgraph wraps the analyzer's bounded BFS, enforcing focus
// existence and a node-count cap.
package subgraph

import (
	"context"

	"github.com/robfromboulder/viewmapper/internal/analyzer"
	"github.com/robfromboulder/viewmapper/internal/apperrors"
	"github.com/robfromboulder/viewmapper/internal/depgraph"
)

const defaultMaxNodes = 50

// Result is a bounded neighborhood extracted around a focus view.
type Result struct {
	Members         []string
	Focus           string
	DepthUpstream   int
	DepthDownstream int
	Truncated       bool
}

// Visualizable reports whether the member set is small enough to render
// directly (|members| <= 50).
func (r Result) Visualizable() bool {
	return len(r.Members) <= 50
}

// ExtractSubgraph resolves focus's bounded neighborhood. A nil maxNodes
// means the caller omitted it and defaultMaxNodes (50) is used; an
// explicit 0 means unlimited.
func ExtractSubgraph(ctx context.Context, g *depgraph.Graph, focus string, depthUpstream, depthDownstream int, maxNodesArg *int) (Result, error) {
	if !g.HasVertex(focus) {
		return Result{}, apperrors.NewViewNotFound(focus)
	}
	maxNodes := defaultMaxNodes
	if maxNodesArg != nil {
		maxNodes = *maxNodesArg
	}

	members := analyzer.BoundedSubgraph(g, focus, depthUpstream, depthDownstream, maxNodes)
	return Result{
		Members:         members,
		Focus:           focus,
		DepthUpstream:   depthUpstream,
		DepthDownstream: depthDownstream,
		Truncated:       maxNodes > 0 && len(members) >= maxNodes,
	}, nil
}
