// Package analyzer implements the four graph algorithms a dependency
// graph is analyzed through: high-impact ranking, leaf enumeration,
// Brandes betweenness centrality, and bounded bidirectional BFS.
package analyzer

import (
	"sort"

	"github.com/robfromboulder/viewmapper/internal/depgraph"
)

// ScoredVertex pairs a vertex label with a numeric score, the shared
// shape high-impact ranking and central-hub ranking both return.
type ScoredVertex struct {
	Label string
	Score float64
}

// HighImpact computes out-degree for every vertex and returns them sorted
// descending by score, tie-broken lexicographically, truncated to limit.
func HighImpact(g *depgraph.Graph, limit int) []ScoredVertex {
	verts := g.Vertices()
	scored := make([]ScoredVertex, len(verts))
	for i, v := range verts {
		scored[i] = ScoredVertex{Label: v, Score: float64(g.OutDegree(v))}
	}
	sortScoredDesc(scored)
	return truncate(scored, limit)
}

// LeafViews returns every zero-out-degree vertex, sorted ascending
// lexicographically — the one ranking with a fully specified order.
func LeafViews(g *depgraph.Graph) []string {
	var leaves []string
	for _, v := range g.Vertices() {
		if g.OutDegree(v) == 0 {
			leaves = append(leaves, v)
		}
	}
	sort.Strings(leaves)
	return leaves
}

// CentralHubs ranks vertices by directed, unnormalized Brandes betweenness
// centrality, descending, truncated to limit.
func CentralHubs(g *depgraph.Graph, limit int) []ScoredVertex {
	centrality := Betweenness(g)
	verts := g.Vertices()
	scored := make([]ScoredVertex, len(verts))
	for i, v := range verts {
		scored[i] = ScoredVertex{Label: v, Score: centrality[v]}
	}
	sortScoredDesc(scored)
	return truncate(scored, limit)
}

// Betweenness computes directed betweenness centrality for every vertex
// via Brandes' algorithm, unweighted, unnormalized.
func Betweenness(g *depgraph.Graph) map[string]float64 {
	verts := g.Vertices()
	centrality := make(map[string]float64, len(verts))
	for _, v := range verts {
		centrality[v] = 0
	}

	for _, s := range verts {
		var stack []string
		pred := make(map[string][]string, len(verts))
		sigma := make(map[string]float64, len(verts))
		dist := make(map[string]int, len(verts))
		for _, v := range verts {
			sigma[v] = 0
			dist[v] = -1
		}
		sigma[s] = 1
		dist[s] = 0

		queue := []string{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range g.OutgoingNeighbours(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		delta := make(map[string]float64, len(verts))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				centrality[w] += delta[w]
			}
		}
	}
	return centrality
}

// BoundedSubgraph implements the bounded bidirectional BFS of spec
// §4.4.4: starting from focus, it adds vertices reachable via up to
// depthUp incoming-edge hops and up to depthDown outgoing-edge hops, each
// vertex recorded exactly once at the depth it is first reached. If
// maxNodes > 0 and the resulting set exceeds maxNodes, it is deterministically
// truncated: focus is always retained, the remaining members are kept in
// descending order of combined degree (ties broken lexicographically),
// down to maxNodes-1 of them.
func BoundedSubgraph(g *depgraph.Graph, focus string, depthUp, depthDown, maxNodes int) []string {
	if !g.HasVertex(focus) {
		return nil
	}

	members := map[string]bool{focus: true}
	if depthUp > 0 {
		for v := range bfsLevels(focus, depthUp, g.IncomingNeighbours) {
			members[v] = true
		}
	}
	if depthDown > 0 {
		for v := range bfsLevels(focus, depthDown, g.OutgoingNeighbours) {
			members[v] = true
		}
	}

	if maxNodes > 0 && len(members) > maxNodes {
		return applyCap(g, focus, members, maxNodes)
	}

	result := make([]string, 0, len(members))
	for v := range members {
		result = append(result, v)
	}
	return result
}

func bfsLevels(start string, maxDepth int, neighbours func(string) []string) map[string]bool {
	visited := map[string]bool{start: true}
	discovered := map[string]bool{}
	frontier := []string{start}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, v := range frontier {
			for _, n := range neighbours(v) {
				if !visited[n] {
					visited[n] = true
					discovered[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return discovered
}

func applyCap(g *depgraph.Graph, focus string, members map[string]bool, maxNodes int) []string {
	type ranked struct {
		label  string
		degree int
	}
	var rest []ranked
	for v := range members {
		if v == focus {
			continue
		}
		rest = append(rest, ranked{label: v, degree: g.InDegree(v) + g.OutDegree(v)})
	}
	sort.Slice(rest, func(i, j int) bool {
		if rest[i].degree != rest[j].degree {
			return rest[i].degree > rest[j].degree
		}
		return rest[i].label < rest[j].label
	})

	keep := maxNodes - 1
	if keep > len(rest) {
		keep = len(rest)
	}
	if keep < 0 {
		keep = 0
	}

	result := make([]string, 0, keep+1)
	result = append(result, focus)
	for i := 0; i < keep; i++ {
		result = append(result, rest[i].label)
	}
	return result
}

func sortScoredDesc(scored []ScoredVertex) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Label < scored[j].Label
	})
}

func truncate(scored []ScoredVertex, limit int) []ScoredVertex {
	if limit < 0 || limit >= len(scored) {
		return scored
	}
	return scored[:limit]
}
