package executor

import (
	"context"
	"testing"
	"time"

	"github.com/vk/taskgrid/internal/schedule"
	"github.com/vk/taskgrid/internal/task"
	"github.com/vk/taskgrid/internal/testutil"
)

// Test for: fan-out execution runs independent tasks in parallel.
func TestRun_FanOutRunsInParallel(t *testing.T) {
	t.Parallel()

	rec := testutil.NewRecorder()
	sleep := 100 * time.Millisecond

	tasks := []*task.Task{
		task.New("A", nil, nil, rec.SleepAction("A", sleep)),
		task.New("B", nil, nil, rec.SleepAction("B", sleep)),
		task.New("C", nil, nil, rec.SleepAction("C", sleep)),
		task.New("D", nil, nil, rec.SleepAction("D", sleep)),
		task.New("E", nil, nil, rec.SleepAction("E", sleep)),
	}
	precedences := map[string][]string{
		"A": nil,
		"B": {"A"},
		"C": {"A"},
		"D": {"B", "C"},
		"E": {"B", "C"},
	}
	system, err := schedule.New(context.Background(), tasks, precedences)
	if err != nil {
		t.Fatalf("schedule.New() returned an unexpected error: %v", err)
	}

	if runErr := New(system, 4).Run(context.Background()); runErr != nil {
		t.Fatalf("Run() returned an unexpected error: %v", runErr)
	}

	recordB, recordC := rec.Get("B"), rec.Get("C")
	if !recordB.Overlaps(recordC) {
		t.Errorf("tasks B and C did not run in parallel")
	}
	recordD, recordE := rec.Get("D"), rec.Get("E")
	if !recordD.Overlaps(recordE) {
		t.Errorf("tasks D and E did not run in parallel")
	}

	if recordD.Start.Before(recordB.End) || recordD.Start.Before(recordC.End) {
		t.Errorf("task D started before its dependencies completed")
	}
	if recordE.Start.Before(recordB.End) || recordE.Start.Before(recordC.End) {
		t.Errorf("task E started before its dependencies completed")
	}
}

// Test for: interfering tasks never overlap even without explicit ordering.
func TestRun_InterferingTasksNeverOverlap(t *testing.T) {
	t.Parallel()

	rec := testutil.NewRecorder()

	tasks := []*task.Task{
		task.New("A", nil, []string{"x"}, rec.SleepAction("A", 200*time.Millisecond)),
		task.New("B", []string{"x"}, nil, rec.SleepAction("B", 300*time.Millisecond)),
		task.New("C", []string{"y"}, nil, rec.SleepAction("C", 200*time.Millisecond)),
		task.New("D", nil, []string{"x", "y"}, rec.SleepAction("D", 100*time.Millisecond)),
	}
	precedences := map[string][]string{"A": nil, "B": nil, "C": nil, "D": nil}
	system, err := schedule.New(context.Background(), tasks, precedences)
	if err != nil {
		t.Fatalf("schedule.New() returned an unexpected error: %v", err)
	}

	if runErr := New(system, 4).Run(context.Background()); runErr != nil {
		t.Fatalf("Run() returned an unexpected error: %v", runErr)
	}
	if rec.Len() != 4 {
		t.Fatalf("expected 4 completed tasks, got %d", rec.Len())
	}

	recordA, recordB := rec.Get("A"), rec.Get("B")
	recordC, recordD := rec.Get("C"), rec.Get("D")

	if recordA.Overlaps(recordB) {
		t.Errorf("tasks A and B share resource x and must not overlap")
	}
	for name, record := range map[string]*testutil.ExecutionRecord{"A": recordA, "B": recordB, "C": recordC} {
		if recordD.Overlaps(record) {
			t.Errorf("task D must not overlap with task %s", name)
		}
	}
}

// Test for: a bounded pool still completes a wave wider than itself.
func TestRun_WaveWiderThanWorkerPool(t *testing.T) {
	t.Parallel()

	rec := testutil.NewRecorder()
	var tasks []*task.Task
	precedences := make(map[string][]string)
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		tasks = append(tasks, task.New(name, nil, nil, rec.SleepAction(name, 20*time.Millisecond)))
		precedences[name] = nil
	}

	system, err := schedule.New(context.Background(), tasks, precedences)
	if err != nil {
		t.Fatalf("schedule.New() returned an unexpected error: %v", err)
	}

	if runErr := New(system, 2).Run(context.Background()); runErr != nil {
		t.Fatalf("Run() returned an unexpected error: %v", runErr)
	}
	if rec.Len() != len(tasks) {
		t.Errorf("expected %d completed tasks, got %d", len(tasks), rec.Len())
	}
}
