package entrypoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robfromboulder/viewmapper/internal/apperrors"
	"github.com/robfromboulder/viewmapper/internal/depgraph"
)

func sampleGraph() *depgraph.Graph {
	g := depgraph.NewGraph()
	g.AddEdge("raw.a", "stg.b")
	g.AddEdge("raw.a", "stg.c")
	g.AddEdge("stg.b", "mart.d")
	g.AddEdge("stg.c", "mart.d")
	return g
}

func TestSuggestEntryPointsHighImpact(t *testing.T) {
	out, err := SuggestEntryPoints(context.Background(), sampleGraph(), "HIGH-IMPACT", nil)
	require.NoError(t, err)
	require.Equal(t, "raw.a", out[0].ViewName)
	require.Equal(t, HighImpact, out[0].Kind)
	require.Contains(t, out[0].Reason, "depend on this")
}

func TestSuggestEntryPointsLeafViews(t *testing.T) {
	out, err := SuggestEntryPoints(context.Background(), sampleGraph(), "leaf-views", nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "mart.d", out[0].ViewName)
	require.Equal(t, LeafView, out[0].Kind)
}

func TestSuggestEntryPointsCentralHubs(t *testing.T) {
	out, err := SuggestEntryPoints(context.Background(), sampleGraph(), "central-hubs", nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	for _, s := range out {
		require.Equal(t, CentralHub, s.Kind)
	}
}

func TestSuggestEntryPointsInvalidStrategy(t *testing.T) {
	_, err := SuggestEntryPoints(context.Background(), sampleGraph(), "bogus", nil)
	require.Error(t, err)
	var invalid *apperrors.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
}

func TestSuggestEntryPointsDefaultLimitIsFive(t *testing.T) {
	g := depgraph.NewGraph()
	for i := 0; i < 10; i++ {
		g.AddEdge("src", string(rune('a'+i)))
	}
	out, err := SuggestEntryPoints(context.Background(), g, "leaf-views", nil)
	require.NoError(t, err)
	require.Len(t, out, defaultLimit)
}

func TestSuggestEntryPointsExplicitLimitOverridesDefault(t *testing.T) {
	g := depgraph.NewGraph()
	for i := 0; i < 10; i++ {
		g.AddEdge("src", string(rune('a'+i)))
	}
	limit := 2
	out, err := SuggestEntryPoints(context.Background(), g, "leaf-views", &limit)
	require.NoError(t, err)
	require.Len(t, out, 2)
}
