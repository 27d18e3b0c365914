// Package task defines the unit of work scheduled by the engine: a named
// callable together with the resource names it declares to read and write.
package task

import "context"

// Action is the executable body of a task. It may block arbitrarily long and
// may mutate external state; the engine never interprets what it does and
// places no timeout on it.
type Action func(ctx context.Context) error

// Task couples a unique name with declared resource access sets and an
// optional action. The declarations drive static hazard analysis only; the
// engine does not arbitrate access to the named resources at runtime, so an
// action must only touch the resources its task declared.
//
// A Task is immutable once constructed. A nil Action is treated as a no-op.
type Task struct {
	// Name uniquely identifies the task across the whole task set.
	Name string
	// Reads lists the resource names the action reads.
	Reads []string
	// Writes lists the resource names the action writes.
	Writes []string
	// Action is the side-effecting callable, or nil.
	Action Action
}

// New constructs a task, copying the access declarations so later mutation
// of the caller's slices cannot leak into the scheduler.
func New(name string, reads, writes []string, action Action) *Task {
	return &Task{
		Name:   name,
		Reads:  append([]string(nil), reads...),
		Writes: append([]string(nil), writes...),
		Action: action,
	}
}
