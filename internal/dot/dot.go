// Package dot renders a schedule's derived maximum-parallelism graph in
// Graphviz DOT format. It consumes only the schedule's read-only views and
// contains no scheduling logic; external tooling does the actual plotting.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/taskgrid/internal/schedule"
)

// Render returns the DOT representation of the schedule's derived graph.
// Nodes appear in declaration order and edges in predecessor-list order,
// so the output is deterministic for a given schedule.
func Render(system *schedule.System) string {
	var sb strings.Builder
	sb.WriteString("digraph taskgrid {\n")
	sb.WriteString("  rankdir=LR;\n")

	names := system.TaskNames()
	for _, name := range names {
		fmt.Fprintf(&sb, "  %q;\n", name)
	}
	for _, name := range names {
		for _, dep := range system.Predecessors(name) {
			fmt.Fprintf(&sb, "  %q -> %q;\n", dep, name)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Write renders the schedule's derived graph to the given writer.
func Write(w io.Writer, system *schedule.System) error {
	_, err := io.WriteString(w, Render(system))
	return err
}
