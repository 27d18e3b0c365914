// Package dag provides the directed-graph utility the scheduling engine is
// built on: an adjacency-set graph over string IDs with cycle enumeration
// and a deterministic topological sort. It has no knowledge of tasks or
// resources; higher layers translate their structures onto it.
package dag
