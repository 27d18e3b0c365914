package schedule

import "github.com/vk/taskgrid/internal/task"

// Interfering reports whether two tasks may not run concurrently. Two tasks
// interfere iff they write a common resource, or one writes a resource the
// other reads. Read/read overlap never interferes. The relation is
// symmetric: Interfering(a, b) == Interfering(b, a) for all task pairs.
func Interfering(a, b *task.Task) bool {
	if intersects(a.Writes, b.Writes) {
		return true
	}
	if intersects(a.Writes, b.Reads) {
		return true
	}
	if intersects(a.Reads, b.Writes) {
		return true
	}
	return false
}

// intersects reports whether the two resource-name sets share any element.
func intersects(xs, ys []string) bool {
	if len(xs) == 0 || len(ys) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		set[x] = struct{}{}
	}
	for _, y := range ys {
		if _, ok := set[y]; ok {
			return true
		}
	}
	return false
}
