package render

import "testing"

func TestSchedulerZeroValueIsInvalid(t *testing.T) {
	var s Scheduler
	if s.Valid() {
		t.Error("zero-value scheduler should be invalid so the first frame draws")
	}
}

func TestSchedulerEnsureValid(t *testing.T) {
	var s Scheduler
	calls := 0
	redraw := func() { calls++ }

	if !s.EnsureValid(redraw) {
		t.Fatal("EnsureValid on an invalid screen should redraw")
	}
	if !s.Valid() {
		t.Error("screen should be valid after redraw")
	}
	if s.EnsureValid(redraw) {
		t.Error("EnsureValid on a valid screen should be a no-op")
	}
	if calls != 1 {
		t.Errorf("redraw calls = %d, want 1", calls)
	}
}

func TestSchedulerInvalidationsCoalesce(t *testing.T) {
	var s Scheduler
	calls := 0
	redraw := func() { calls++ }

	s.EnsureValid(redraw)
	s.Invalidate()
	s.Invalidate()
	s.Invalidate()
	s.EnsureValid(redraw)
	s.EnsureValid(redraw)

	if calls != 2 {
		t.Errorf("redraw calls = %d, want 2", calls)
	}
}

func TestSchedulerInvalidateDuringRedraw(t *testing.T) {
	var s Scheduler
	// An invalidation issued inside the redraw callback is absorbed by the
	// frame in progress: the state settles at valid.
	s.EnsureValid(func() { s.Invalidate() })
	if !s.Valid() {
		t.Error("mid-redraw invalidation should be absorbed by the completing frame")
	}
}
