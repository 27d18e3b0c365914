package schedule

import (
	"context"
	"fmt"

	"github.com/vk/taskgrid/internal/ctxlog"
	"github.com/vk/taskgrid/internal/dag"
	"github.com/vk/taskgrid/internal/task"
)

// System is a validated scheduling context: the task set, the caller's
// explicit precedence mapping, and the derived maximum-parallelism
// predecessor mapping. It is immutable after construction; runs only read
// from it.
type System struct {
	tasks map[string]*task.Task
	// order preserves the declaration order of the task list. Augmentation
	// tie-breaks and readiness scans depend on it being stable.
	order    []string
	explicit map[string][]string
	derived  map[string][]string
}

// New constructs a validated scheduling context or fails with a structured
// construction error. Validation runs in a fixed order: duplicate task
// names, missing precedence entries, dangling dependency references, then
// cycles in the explicit graph. On success the explicit graph has already
// been augmented with interference-derived edges and re-checked for
// acyclicity.
func New(ctx context.Context, tasks []*task.Task, precedences map[string][]string) (*System, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building schedule.", "task_count", len(tasks))

	if err := validateTasks(tasks); err != nil {
		return nil, err
	}
	if err := validatePrecedences(tasks, precedences); err != nil {
		return nil, err
	}

	s := &System{
		tasks:    make(map[string]*task.Task, len(tasks)),
		order:    make([]string, 0, len(tasks)),
		explicit: make(map[string][]string, len(tasks)),
		derived:  make(map[string][]string, len(tasks)),
	}
	for _, t := range tasks {
		s.tasks[t.Name] = t
		s.order = append(s.order, t.Name)
		s.explicit[t.Name] = append([]string(nil), precedences[t.Name]...)
		s.derived[t.Name] = append([]string(nil), precedences[t.Name]...)
	}

	if err := s.buildMaxParallelism(ctx); err != nil {
		return nil, err
	}

	logger.Debug("Schedule built.", "task_count", len(s.order))
	return s, nil
}

// validateTasks rejects duplicate task identities, listing every offender.
func validateTasks(tasks []*task.Task) error {
	seen := make(map[string]int, len(tasks))
	for _, t := range tasks {
		seen[t.Name]++
	}

	var duplicates []string
	reported := make(map[string]bool)
	for _, t := range tasks {
		if seen[t.Name] > 1 && !reported[t.Name] {
			duplicates = append(duplicates, t.Name)
			reported[t.Name] = true
		}
	}
	if len(duplicates) > 0 {
		return &DuplicateTasksError{Names: duplicates}
	}
	return nil
}

// validatePrecedences checks the explicit precedence mapping is total,
// references only real tasks, and describes an acyclic graph.
func validatePrecedences(tasks []*task.Task, precedences map[string][]string) error {
	var missing []string
	for _, t := range tasks {
		if _, ok := precedences[t.Name]; !ok {
			missing = append(missing, t.Name)
		}
	}
	if len(missing) > 0 {
		return &MissingPrecedenceError{Names: missing}
	}

	names := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		names[t.Name] = true
	}
	for _, t := range tasks {
		for _, dep := range precedences[t.Name] {
			if !names[dep] {
				return &DanglingDependencyError{Task: t.Name, Dependency: dep}
			}
		}
	}

	order := make([]string, len(tasks))
	for i, t := range tasks {
		order[i] = t.Name
	}
	graph, err := buildGraph(order, precedences)
	if err != nil {
		return err
	}
	if cycles := graph.Cycles(); len(cycles) > 0 {
		return &CycleError{Cycles: cycles}
	}
	return nil
}

// buildMaxParallelism augments the copied explicit mapping with one edge per
// interfering, unordered pair. For each declaration-ordered pair (i < j) the
// earlier task becomes a predecessor of the later one; the tie-break is
// deliberately index-based, not semantic. The ordering check is direct
// membership only, not transitive reachability.
func (s *System) buildMaxParallelism(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for i, a := range s.order {
		for _, b := range s.order[i+1:] {
			if containsName(s.derived[a], b) || containsName(s.derived[b], a) {
				continue
			}
			if Interfering(s.tasks[a], s.tasks[b]) {
				logger.Debug("Linking interference-derived dependency.", "from", a, "to", b)
				s.derived[b] = append(s.derived[b], a)
			}
		}
	}

	// Augmentation must preserve acyclicity; a cycle here is a defect in
	// this package, never a caller mistake.
	graph, err := buildGraph(s.order, s.derived)
	if err != nil {
		return err
	}
	if cycles := graph.Cycles(); len(cycles) > 0 {
		return fmt.Errorf("internal error: maximum parallelism graph is cyclic: %w", &CycleError{Cycles: cycles})
	}
	return nil
}

// buildGraph translates a predecessor mapping onto a dag.Graph, preserving
// the given node order.
func buildGraph(order []string, preds map[string][]string) (*dag.Graph, error) {
	graph := dag.New()
	for _, name := range order {
		graph.AddNode(name)
	}
	for _, name := range order {
		for _, dep := range preds[name] {
			if err := graph.AddEdge(dep, name); err != nil {
				return nil, fmt.Errorf("adding edge %s -> %s: %w", dep, name, err)
			}
		}
	}
	return graph, nil
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}

// Len returns the number of tasks in the schedule.
func (s *System) Len() int {
	return len(s.order)
}

// TaskNames returns all task names in declaration order.
func (s *System) TaskNames() []string {
	return append([]string(nil), s.order...)
}

// Task looks up a task by name.
func (s *System) Task(name string) (*task.Task, bool) {
	t, ok := s.tasks[name]
	return t, ok
}

// Predecessors returns the derived maximum-parallelism predecessor set for
// the named task: every listed task must fully complete before this one
// starts.
func (s *System) Predecessors(name string) []string {
	return append([]string(nil), s.derived[name]...)
}

// ExplicitPrecedences returns a copy of the caller-supplied precedence
// mapping, the system's ground truth of required (as opposed to derived)
// ordering.
func (s *System) ExplicitPrecedences() map[string][]string {
	return copyMapping(s.explicit)
}

// MaxParallelism returns a read-only copy of the derived graph as a
// predecessor mapping, for external tooling such as visualization. Its edge
// set is always a superset of the explicit mapping's.
func (s *System) MaxParallelism() map[string][]string {
	return copyMapping(s.derived)
}

// TopologicalOrder returns one deterministic total order of the derived
// graph, suitable for a strictly sequential run.
func (s *System) TopologicalOrder() ([]string, error) {
	graph, err := buildGraph(s.order, s.derived)
	if err != nil {
		return nil, err
	}
	return graph.TopologicalSort()
}

func copyMapping(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for name, deps := range m {
		out[name] = append([]string(nil), deps...)
	}
	return out
}
