package toolcontract

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robfromboulder/viewmapper/internal/complexity"
	"github.com/robfromboulder/viewmapper/internal/depgraph"
	"github.com/robfromboulder/viewmapper/internal/subgraph"
)

func sampleGraph() *depgraph.Graph {
	g := depgraph.NewGraph()
	g.AddEdge("raw.a", "stg.b")
	g.AddEdge("stg.b", "mart.c")
	return g
}

func TestCatalogListsFiveOperations(t *testing.T) {
	require.Len(t, Catalog, 5)
	names := make(map[string]bool, len(Catalog))
	for _, op := range Catalog {
		require.NotEmpty(t, op.Description)
		names[op.Name] = true
	}
	for _, want := range []string{AnalyzeSchema, SuggestEntryPoints, ExtractSubgraph, RenderSubgraph, RenderFullSchema} {
		require.True(t, names[want], want)
	}
}

func TestDispatchAnalyzeSchema(t *testing.T) {
	in, _ := json.Marshal(AnalyzeSchemaInput{SchemaName: "analytics"})
	out, err := Dispatch(context.Background(), sampleGraph(), AnalyzeSchema, in)
	require.NoError(t, err)

	var sc complexity.SchemaComplexity
	require.NoError(t, json.Unmarshal(out, &sc))
	require.Equal(t, "analytics", sc.SchemaName)
	require.Equal(t, 3, sc.ViewCount)
}

func TestDispatchSuggestEntryPoints(t *testing.T) {
	in, _ := json.Marshal(SuggestEntryPointsInput{Strategy: "leaf-views"})
	out, err := Dispatch(context.Background(), sampleGraph(), SuggestEntryPoints, in)
	require.NoError(t, err)
	require.Contains(t, string(out), "mart.c")
}

func TestDispatchExtractSubgraph(t *testing.T) {
	in, _ := json.Marshal(ExtractSubgraphInput{Focus: "stg.b", DepthUp: 1, DepthDown: 1})
	out, err := Dispatch(context.Background(), sampleGraph(), ExtractSubgraph, in)
	require.NoError(t, err)

	var result subgraph.Result
	require.NoError(t, json.Unmarshal(out, &result))
	require.ElementsMatch(t, []string{"raw.a", "stg.b", "mart.c"}, result.Members)
}

func TestDispatchRenderFullSchema(t *testing.T) {
	out, err := Dispatch(context.Background(), sampleGraph(), RenderFullSchema, nil)
	require.NoError(t, err)

	var diagOut DiagramOutput
	require.NoError(t, json.Unmarshal(out, &diagOut))
	require.Contains(t, diagOut.Diagram, "```mermaid")
}

func TestDispatchUnknownOperation(t *testing.T) {
	_, err := Dispatch(context.Background(), sampleGraph(), "bogus", nil)
	require.Error(t, err)
}
