package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robfromboulder/viewmapper/internal/depgraph"
)

// diamond builds: raw.a -> stg.b -> mart.d
//                 raw.a -> stg.c -> mart.d
func diamond() *depgraph.Graph {
	g := depgraph.NewGraph()
	g.AddEdge("raw.a", "stg.b")
	g.AddEdge("raw.a", "stg.c")
	g.AddEdge("stg.b", "mart.d")
	g.AddEdge("stg.c", "mart.d")
	return g
}

func TestHighImpactRanksByOutDegreeDescending(t *testing.T) {
	g := diamond()
	ranked := HighImpact(g, 10)
	require.Equal(t, "raw.a", ranked[0].Label)
	require.Equal(t, float64(2), ranked[0].Score)
}

func TestHighImpactTieBreaksLexicographically(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddEdge("src", "zeta")
	g.AddEdge("src", "alpha")
	ranked := HighImpact(g, 10)

	var tied []string
	for _, r := range ranked {
		if r.Score == 1 {
			tied = append(tied, r.Label)
		}
	}
	require.Equal(t, []string{"alpha", "zeta"}, tied)
}

func TestHighImpactRespectsLimit(t *testing.T) {
	g := diamond()
	ranked := HighImpact(g, 1)
	require.Len(t, ranked, 1)
}

func TestLeafViewsAscendingLexicographic(t *testing.T) {
	g := diamond()
	leaves := LeafViews(g)
	require.Equal(t, []string{"mart.d"}, leaves)
}

func TestLeafViewsMultipleSortedAlphabetically(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddEdge("src", "zeta")
	g.AddView("alpha")
	g.AddView("beta")
	leaves := LeafViews(g)
	require.Equal(t, []string{"alpha", "beta", "zeta"}, leaves)
}

func TestBetweennessBridgeScoresHighest(t *testing.T) {
	// raw.a and raw.b both feed into bridge, which feeds mart.c and mart.d.
	g := depgraph.NewGraph()
	g.AddEdge("raw.a", "bridge")
	g.AddEdge("raw.b", "bridge")
	g.AddEdge("bridge", "mart.c")
	g.AddEdge("bridge", "mart.d")

	centrality := Betweenness(g)
	require.Greater(t, centrality["bridge"], centrality["raw.a"])
	require.Greater(t, centrality["bridge"], centrality["mart.c"])
}

func TestBetweennessLeafAndSourceScoreZero(t *testing.T) {
	g := diamond()
	centrality := Betweenness(g)
	require.Equal(t, float64(0), centrality["raw.a"])
	require.Equal(t, float64(0), centrality["mart.d"])
}

func TestBoundedSubgraphUnknownFocusReturnsNil(t *testing.T) {
	g := diamond()
	require.Nil(t, BoundedSubgraph(g, "nope", 1, 1, 50))
}

func TestBoundedSubgraphWithinCapIncludesAllLevels(t *testing.T) {
	g := diamond()
	members := BoundedSubgraph(g, "stg.b", 1, 1, 50)
	require.ElementsMatch(t, []string{"stg.b", "raw.a", "mart.d"}, members)
}

func TestBoundedSubgraphZeroDepthIsFocusOnly(t *testing.T) {
	g := diamond()
	members := BoundedSubgraph(g, "stg.b", 0, 0, 50)
	require.Equal(t, []string{"stg.b"}, members)
}

func TestBoundedSubgraphCapOnlyAppliesWhenExceeded(t *testing.T) {
	g := diamond()
	// reachable set from stg.b with up=1,down=1 is exactly 3 (stg.b, raw.a, mart.d).
	members := BoundedSubgraph(g, "stg.b", 1, 1, 3)
	require.Len(t, members, 3)
}

func TestBoundedSubgraphCapTruncatesByDegreeKeepingFocus(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddEdge("hub", "low")
	g.AddEdge("hub", "mid")
	g.AddEdge("mid", "anchor")
	g.AddEdge("low", "other")

	members := BoundedSubgraph(g, "hub", 0, 2, 2)
	require.Contains(t, members, "hub")
	require.Len(t, members, 2)
}

func TestBoundedSubgraphZeroMaxNodesIsUnlimited(t *testing.T) {
	g := diamond()
	members := BoundedSubgraph(g, "stg.b", 1, 1, 0)
	require.ElementsMatch(t, []string{"stg.b", "raw.a", "mart.d"}, members)
}
