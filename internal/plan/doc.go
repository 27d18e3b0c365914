// Package plan loads declarative task plans from HCL or YAML files and
// translates them into the task list and explicit precedence mapping the
// scheduling engine consumes. A plan declares, per task, the resource names
// it reads and writes, its explicit depends_on ordering, and optional
// built-in action attributes (sleep, echo).
package plan
