package render

// Scheduler is the redraw-invalidation state machine: a screen is either
// Valid (displayed frame reflects current state) or Invalid (a redraw is
// owed). The zero value is Invalid, which forces the first frame.
//
// Invalidate never draws; it only records that the next EnsureValid must.
// Any number of invalidations between two EnsureValid calls collapse into
// a single redraw.
type Scheduler struct {
	valid bool
}

// Valid reports whether the displayed frame is current.
func (s *Scheduler) Valid() bool { return s.valid }

// Invalidate marks the screen stale. The redraw is deferred to the next
// EnsureValid call.
func (s *Scheduler) Invalidate() { s.valid = false }

// EnsureValid redraws via redraw if the screen is stale and reports whether
// it did. Calling it on a valid screen is a no-op, so back-to-back checks
// cost nothing.
func (s *Scheduler) EnsureValid(redraw func()) bool {
	if s.valid {
		return false
	}
	redraw()
	s.valid = true
	return true
}
