// Package executor runs a validated schedule. It offers two strategies over
// the same derived graph: a strictly sequential run in topological order,
// and a wave-based concurrent run that dispatches every currently-ready
// task onto a bounded worker pool and drains the whole wave before scanning
// for the next one.
package executor
