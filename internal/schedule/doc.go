// Package schedule turns a task list and its explicit precedence mapping
// into a validated, maximally-parallel execution schedule.
//
// Construction happens in fixed passes: validate task identities, validate
// the precedence mapping (totality, referential integrity, acyclicity),
// then augment the explicit graph with one edge per interfering unordered
// pair of tasks. The augmented "maximum parallelism" graph is the tightest
// ordering that is still safe to run fully concurrently; the executor
// consumes it and nothing else.
package schedule
