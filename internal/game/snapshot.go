package game

// State is the coarse drag state of a session.
type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
	StateCleared  State = "cleared"
)

// Snapshot captures session state for tests and logging.
type Snapshot struct {
	Generation uint64
	Score      int
	Remaining  int
	Selection  []int
	Sum        int
	State      State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case s.store.IsEmpty():
		state = StateCleared
	case s.tracker.Active():
		state = StateDragging
	}

	return Snapshot{
		Generation: s.generation,
		Score:      s.score,
		Remaining:  s.store.Len(),
		Selection:  s.tracker.Selected(),
		Sum:        s.SelectionSum(),
		State:      state,
	}
}
