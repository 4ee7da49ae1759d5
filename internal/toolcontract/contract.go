// Package toolcontract declares the fixed, five-operation catalog a
// reasoning loop dispatches into: analyzeSchema, suggestEntryPoints,
// extractSubgraph, renderSubgraph, renderFullSchema. Descriptions are
// part of the contract — they are the only signal an LLM caller has
// about when to invoke which operation.
package toolcontract

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/robfromboulder/viewmapper/internal/apperrors"
	"github.com/robfromboulder/viewmapper/internal/complexity"
	"github.com/robfromboulder/viewmapper/internal/depgraph"
	"github.com/robfromboulder/viewmapper/internal/diagram"
	"github.com/robfromboulder/viewmapper/internal/entrypoint"
	"github.com/robfromboulder/viewmapper/internal/subgraph"
)

// Operation names, the only strings a caller may pass to Dispatch.
const (
	AnalyzeSchema      = "analyzeSchema"
	SuggestEntryPoints = "suggestEntryPoints"
	ExtractSubgraph    = "extractSubgraph"
	RenderSubgraph     = "renderSubgraph"
	RenderFullSchema   = "renderFullSchema"
)

// OperationSpec is one catalog entry: its name and the description shown
// to the reasoning loop when choosing between operations.
type OperationSpec struct {
	Name        string
	Description string
}

// Catalog is the declarative, fixed operation list.
var Catalog = []OperationSpec{
	{
		Name:        AnalyzeSchema,
		Description: "Assess the loaded schema's complexity from its view count and get guidance on whether focused exploration is required before rendering a diagram.",
	},
	{
		Name:        SuggestEntryPoints,
		Description: "Suggest starting views for exploration: by impact (most other views depend on it), by leaf (a terminal report with no dependents), or by structural centrality (a bridge between sources and consumers).",
	},
	{
		Name:        ExtractSubgraph,
		Description: "Extract a bounded neighborhood of views upstream and/or downstream of one focus view, capped at a maximum node count, for focused exploration of a large schema.",
	},
	{
		Name:        RenderSubgraph,
		Description: "Render a previously extracted subgraph as a diagram description the user can read.",
	},
	{
		Name:        RenderFullSchema,
		Description: "Render every loaded view as a single diagram description; only feasible for small schemas.",
	},
}

// AnalyzeSchemaInput is analyzeSchema's typed input.
type AnalyzeSchemaInput struct {
	SchemaName string `json:"schemaName"`
}

// SuggestEntryPointsInput is suggestEntryPoints' typed input.
type SuggestEntryPointsInput struct {
	Strategy string `json:"strategy"`
	Limit    *int   `json:"limit,omitempty"`
}

// ExtractSubgraphInput is extractSubgraph's typed input.
type ExtractSubgraphInput struct {
	Focus     string `json:"focus"`
	DepthUp   int    `json:"depthUp"`
	DepthDown int    `json:"depthDown"`
	MaxNodes  *int   `json:"maxNodes,omitempty"`
}

// DiagramOutput wraps a rendered diagram as typed JSON output.
type DiagramOutput struct {
	Diagram string `json:"diagram"`
}

// Dispatch decodes rawArgs against operation's input schema, invokes the
// corresponding service, and returns its typed output as JSON. No
// operation mutates g.
func Dispatch(ctx context.Context, g *depgraph.Graph, operation string, rawArgs []byte) ([]byte, error) {
	switch operation {
	case AnalyzeSchema:
		var in AnalyzeSchemaInput
		if err := json.Unmarshal(rawArgs, &in); err != nil {
			return nil, errors.WithStack(err)
		}
		out := complexity.FromViewCount(in.SchemaName, g.VertexCount())
		return json.Marshal(out)

	case SuggestEntryPoints:
		var in SuggestEntryPointsInput
		if err := json.Unmarshal(rawArgs, &in); err != nil {
			return nil, errors.WithStack(err)
		}
		out, err := entrypoint.SuggestEntryPoints(ctx, g, in.Strategy, in.Limit)
		if err != nil {
			return nil, err
		}
		return json.Marshal(out)

	case ExtractSubgraph:
		var in ExtractSubgraphInput
		if err := json.Unmarshal(rawArgs, &in); err != nil {
			return nil, errors.WithStack(err)
		}
		out, err := subgraph.ExtractSubgraph(ctx, g, in.Focus, in.DepthUp, in.DepthDown, in.MaxNodes)
		if err != nil {
			return nil, err
		}
		return json.Marshal(out)

	case RenderSubgraph:
		var in subgraph.Result
		if err := json.Unmarshal(rawArgs, &in); err != nil {
			return nil, errors.WithStack(err)
		}
		return json.Marshal(DiagramOutput{Diagram: diagram.RenderSubgraph(g, in)})

	case RenderFullSchema:
		return json.Marshal(DiagramOutput{Diagram: diagram.RenderFullSchema(g)})

	default:
		return nil, apperrors.NewInvalidArgument("operation", operation)
	}
}
