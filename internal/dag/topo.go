package dag

import "fmt"

// TopologicalSort returns one total order of the graph's nodes consistent
// with its dependency edges, using Kahn's algorithm. Among nodes that are
// simultaneously ready it always picks the earliest-inserted one, so the
// result is deterministic for a given construction sequence. An error is
// returned if the graph contains a cycle.
func (g *Graph) TopologicalSort() ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	remaining := make(map[string]int, len(g.nodes))
	for id, n := range g.nodes {
		remaining[id] = len(n.deps)
	}

	sorted := make([]string, 0, len(g.nodes))
	emitted := make(map[string]bool, len(g.nodes))

	for len(sorted) < len(g.nodes) {
		progressed := false
		for _, id := range g.order {
			if emitted[id] || remaining[id] != 0 {
				continue
			}
			emitted[id] = true
			sorted = append(sorted, id)
			for depID := range g.nodes[id].dependents {
				remaining[depID]--
			}
			progressed = true
			break
		}
		if !progressed {
			return nil, fmt.Errorf("cannot order graph: %d of %d nodes are on a cycle", len(g.nodes)-len(sorted), len(g.nodes))
		}
	}

	return sorted, nil
}
