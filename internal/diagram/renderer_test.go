package diagram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robfromboulder/viewmapper/internal/depgraph"
	"github.com/robfromboulder/viewmapper/internal/subgraph"
)

func sampleGraph() *depgraph.Graph {
	g := depgraph.NewGraph()
	g.AddEdge("raw.a", "stg.b")
	g.AddEdge("stg.b", "mart.c")
	return g
}

func TestRenderSubgraphEmptyMembers(t *testing.T) {
	out := RenderSubgraph(sampleGraph(), subgraph.Result{})
	require.Contains(t, out, "no views loaded")
}

func TestRenderSubgraphIncludesNodesAndEdges(t *testing.T) {
	g := sampleGraph()
	result := subgraph.Result{Members: []string{"raw.a", "stg.b", "mart.c"}, Focus: "stg.b"}
	out := RenderSubgraph(g, result)

	require.Contains(t, out, "```mermaid")
	require.Contains(t, out, "raw.a")
	require.Contains(t, out, "stg.b")
	require.Contains(t, out, "-->")
	require.Contains(t, out, "style")
}

func TestRenderSubgraphDeterministicAcrossCalls(t *testing.T) {
	g := sampleGraph()
	result := subgraph.Result{Members: []string{"mart.c", "raw.a", "stg.b"}, Focus: "stg.b"}
	first := RenderSubgraph(g, result)
	second := RenderSubgraph(g, result)
	require.Equal(t, first, second)
}

func TestRenderSubgraphOverflowBeyondLimit(t *testing.T) {
	members := make([]string, 101)
	for i := range members {
		members[i] = string(rune('a' + i%26))
	}
	out := RenderSubgraph(sampleGraph(), subgraph.Result{Members: members})
	require.Contains(t, out, "exceeds")
}

func TestRenderFullSchemaOmitsStyling(t *testing.T) {
	out := RenderFullSchema(sampleGraph())
	require.NotContains(t, out, "style")
	require.Contains(t, out, "-->")
}

func TestLabelUsesLastTwoComponents(t *testing.T) {
	require.Equal(t, "raw.orders", label("wh.raw.orders"))
	require.Equal(t, "orders", label("orders"))
}
