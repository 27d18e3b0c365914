package executor

import (
	"fmt"
	"strings"
)

// DeadlockError is returned when no task is ready but the run is not yet
// complete. Given a validated acyclic schedule this state is unreachable,
// so it signals an internal invariant violation rather than a caller
// mistake; it is kept as a runtime safety net.
type DeadlockError struct {
	// Remaining lists the tasks that had not completed when progress stopped.
	Remaining []string
}

func (e *DeadlockError) Error() string {
	return fmt.Sprintf("deadlock detected: no ready tasks but %d incomplete (%s)",
		len(e.Remaining), strings.Join(e.Remaining, ", "))
}
