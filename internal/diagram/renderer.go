// Package diagram converts a subgraph (or the whole graph) into a
// mermaid-flavored text diagram.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robfromboulder/viewmapper/internal/depgraph"
	"github.com/robfromboulder/viewmapper/internal/subgraph"
)

const maxRenderableNodes = 100

const (
	styleFocus      = "fill:#f96,stroke:#333,stroke-width:2px"
	styleUpstream   = "fill:#bbf,stroke:#333"
	styleDownstream = "fill:#bfb,stroke:#333"
)

// RenderSubgraph renders result's member set against g as mermaid text.
func RenderSubgraph(g *depgraph.Graph, result subgraph.Result) string {
	if len(result.Members) == 0 {
		return emptyDiagram()
	}
	if len(result.Members) > maxRenderableNodes {
		return overflowDiagram(len(result.Members))
	}

	members := sortedCopy(result.Members)
	ids := assignNodeIDs(members)

	var b strings.Builder
	b.WriteString("```mermaid\ngraph TB\n")
	for _, m := range members {
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", ids[m], label(m))
	}
	writeEdges(&b, g, members, ids)

	if result.Focus != "" {
		fmt.Fprintf(&b, "    style %s %s\n", ids[result.Focus], styleFocus)
		for _, u := range g.IncomingNeighbours(result.Focus) {
			if id, ok := ids[u]; ok {
				fmt.Fprintf(&b, "    style %s %s\n", id, styleUpstream)
			}
		}
		for _, d := range g.OutgoingNeighbours(result.Focus) {
			if id, ok := ids[d]; ok {
				fmt.Fprintf(&b, "    style %s %s\n", id, styleDownstream)
			}
		}
	}
	b.WriteString("```\n")
	return b.String()
}

// RenderFullSchema renders the entire graph with focus unset: the same
// node/edge contract as RenderSubgraph, but with per-node styling omitted.
func RenderFullSchema(g *depgraph.Graph) string {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return emptyDiagram()
	}
	if len(vertices) > maxRenderableNodes {
		return overflowDiagram(len(vertices))
	}

	members := sortedCopy(vertices)
	ids := assignNodeIDs(members)

	var b strings.Builder
	b.WriteString("```mermaid\ngraph TB\n")
	for _, m := range members {
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", ids[m], label(m))
	}
	writeEdges(&b, g, members, ids)
	b.WriteString("```\n")
	return b.String()
}

func emptyDiagram() string {
	return "```mermaid\ngraph TB\n    empty[\"no views loaded\"]\n```\n"
}

func overflowDiagram(size int) string {
	return fmt.Sprintf(
		"```mermaid\ngraph TB\n    toolarge[\"%d nodes exceeds the %d-node rendering limit — use the subgraph service to narrow scope first\"]\n```\n",
		size, maxRenderableNodes,
	)
}

// sortedCopy produces a deterministic member ordering so node-id
// assignment (and therefore the whole rendered text) is stable across
// calls on an equal member set.
func sortedCopy(members []string) []string {
	out := make([]string, len(members))
	copy(out, members)
	sort.Strings(out)
	return out
}

func assignNodeIDs(members []string) map[string]string {
	ids := make(map[string]string, len(members))
	for i, m := range members {
		ids[m] = fmt.Sprintf("node%d", i+1)
	}
	return ids
}

func writeEdges(b *strings.Builder, g *depgraph.Graph, members []string, ids map[string]string) {
	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}
	for _, u := range members {
		for _, v := range g.OutgoingNeighbours(u) {
			if memberSet[v] {
				fmt.Fprintf(b, "    %s --> %s\n", ids[u], ids[v])
			}
		}
	}
}

// label derives a human-readable node label from a fully-qualified name:
// the last one or two dot-separated components.
func label(fqName string) string {
	parts := strings.Split(fqName, ".")
	if len(parts) <= 2 {
		return fqName
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
