package dungeon

// Slot holds at most one pending event. Posting into a full slot replaces
// the pending value, so a burst of posts within one frame is seen once.
type Slot[T any] struct {
	value   T
	pending bool
}

// Post stores v as the pending event.
func (s *Slot[T]) Post(v T) {
	s.value = v
	s.pending = true
}

// Take returns the pending event and empties the slot.
func (s *Slot[T]) Take() (T, bool) {
	v, ok := s.value, s.pending
	var zero T
	s.value = zero
	s.pending = false
	return v, ok
}

// Pending reports whether an event is waiting.
func (s *Slot[T]) Pending() bool {
	return s.pending
}

// Reset drops any pending event.
func (s *Slot[T]) Reset() {
	s.Take()
}

// Tick is posted when the player commits to a move; monsters respond to it.
type Tick struct{}

// EndTick is posted when the player arrives on its target cell.
type EndTick struct{}

// ChangeLevel asks for the level to be rebuilt. Advance moves to the next
// level; otherwise the current level restarts.
type ChangeLevel struct {
	Advance bool
}
