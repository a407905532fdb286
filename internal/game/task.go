package game

import "time"

// TaskKind identifies a deferred presentation task.
type TaskKind int

const (
	// TaskDetach asks the presentation layer to drop the visuals of tiles
	// that were already removed logically.
	TaskDetach TaskKind = iota
	// TaskAnnounce asks the presentation layer to show the final score and
	// then call Session.Reset.
	TaskAnnounce
)

// String returns a human-readable name for the task kind.
func (k TaskKind) String() string {
	switch k {
	case TaskDetach:
		return "detach"
	case TaskAnnounce:
		return "announce"
	default:
		return "unknown"
	}
}

// Task is a side effect scheduled by the session. The session never waits
// on it: logical state is final before the task is emitted.
type Task struct {
	Kind       TaskKind
	Generation uint64        // session generation that emitted the task
	Delay      time.Duration // how long the consumer should wait before running it
	IDs        []int         // TaskDetach: tiles to detach
	FinalScore int           // TaskAnnounce: score to present
}
