// Package testutil provides shared helpers for concurrency tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/vk/taskgrid/internal/task"
)

// ExecutionRecord captures the wall-clock window of one task execution.
type ExecutionRecord struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two execution windows overlap in time.
func (r *ExecutionRecord) Overlaps(other *ExecutionRecord) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Recorder collects execution windows from concurrently running task
// actions for later overlap assertions.
type Recorder struct {
	mu      sync.Mutex
	records map[string]*ExecutionRecord
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{records: make(map[string]*ExecutionRecord)}
}

// SleepAction returns a task action that sleeps for the given duration and
// records its execution window under the given name.
func (r *Recorder) SleepAction(name string, d time.Duration) task.Action {
	return func(ctx context.Context) error {
		start := time.Now()
		time.Sleep(d)
		end := time.Now()

		r.mu.Lock()
		r.records[name] = &ExecutionRecord{Start: start, End: end}
		r.mu.Unlock()
		return nil
	}
}

// Get returns the record for a name, or nil if the task never ran.
func (r *Recorder) Get(name string) *ExecutionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[name]
}

// Len returns the number of recorded executions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
