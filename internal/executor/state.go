package executor

import "sync"

// board tracks which tasks have completed during a single run. It is sized
// once at the start of the run and indexed by each task's declaration
// index, so completion checks never re-derive identity from names. All
// access is serialized by the mutex; readiness scans take a snapshot and
// never observe a partial insertion.
type board struct {
	mu        sync.Mutex
	done      []bool
	completed int
}

func newBoard(size int) *board {
	return &board{done: make([]bool, size)}
}

// markDone records completion of the task at index i. Marking the same
// index twice is a programming error and would corrupt the counter, but
// the wave barrier makes that impossible: a task is dispatched at most once.
func (b *board) markDone(i int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.done[i] = true
	b.completed++
}

// snapshot returns a consistent copy of the completion flags.
func (b *board) snapshot() []bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]bool(nil), b.done...)
}

// count returns how many tasks have completed.
func (b *board) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.completed
}
