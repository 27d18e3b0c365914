package dag

import (
	"fmt"
	"sort"
	"strings"
)

// Cycles returns every cycle discovered by a depth-first traversal, each as
// the sequence of node IDs along the cycle (without repeating the first
// node). An empty result means the graph is acyclic. Traversal visits nodes
// in insertion order and dependencies in lexicographic order, so the output
// is deterministic.
func (g *Graph) Cycles() [][]string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var cycles [][]string
	visited := make(map[string]bool)
	onStack := make(map[string]int)
	var stack []string

	var visit func(n *node)
	visit = func(n *node) {
		onStack[n.id] = len(stack)
		stack = append(stack, n.id)

		for _, depID := range sortedKeys(n.deps) {
			if at, ok := onStack[depID]; ok {
				// Back edge: everything from the dependency's stack position
				// down to the current node forms a cycle.
				cycles = append(cycles, append([]string(nil), stack[at:]...))
				continue
			}
			if !visited[depID] {
				visit(n.deps[depID])
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, n.id)
		visited[n.id] = true
	}

	for _, id := range g.order {
		if !visited[id] {
			visit(g.nodes[id])
		}
	}
	return cycles
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error
// naming every detected cycle, or nil if the graph is a valid DAG.
func (g *Graph) DetectCycles() error {
	cycles := g.Cycles()
	if len(cycles) == 0 {
		return nil
	}

	described := make([]string, len(cycles))
	for i, cycle := range cycles {
		described[i] = strings.Join(cycle, " -> ")
	}
	return fmt.Errorf("cycle detected: %s", strings.Join(described, "; "))
}

func sortedKeys(m map[string]*node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
