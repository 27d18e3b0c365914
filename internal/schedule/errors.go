package schedule

import (
	"fmt"
	"strings"
)

// DuplicateTasksError reports task names that appear more than once in the
// task list. Names carries each offending name once, in declaration order.
type DuplicateTasksError struct {
	Names []string
}

func (e *DuplicateTasksError) Error() string {
	return fmt.Sprintf("duplicate task names found: %s", strings.Join(e.Names, ", "))
}

// MissingPrecedenceError reports tasks that have no entry in the explicit
// precedence mapping. The mapping must be total, even for tasks with no
// predecessors.
type MissingPrecedenceError struct {
	Names []string
}

func (e *MissingPrecedenceError) Error() string {
	return fmt.Sprintf("tasks missing from precedences: %s", strings.Join(e.Names, ", "))
}

// DanglingDependencyError reports a precedence entry that references a task
// name not present in the task list.
type DanglingDependencyError struct {
	Task       string
	Dependency string
}

func (e *DanglingDependencyError) Error() string {
	return fmt.Sprintf("non-existent dependency %q for task %q", e.Dependency, e.Task)
}

// CycleError reports circular dependencies. Cycles holds every detected
// cycle as the sequence of task names along it.
type CycleError struct {
	Cycles [][]string
}

func (e *CycleError) Error() string {
	described := make([]string, len(e.Cycles))
	for i, cycle := range e.Cycles {
		described[i] = strings.Join(cycle, " -> ")
	}
	return fmt.Sprintf("cyclic dependencies detected: %s", strings.Join(described, "; "))
}
