package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-apples/internal/core"
)

// View is the presentation collaborator the session reads from and writes to.
type View interface {
	CenterSource
	Highlighter

	// ShowDragRect displays the selection rectangle.
	ShowDragRect(r core.Rect)
	// HideDragRect hides the selection rectangle.
	HideDragRect()
}

// Options configures a session.
type Options struct {
	Rows            int
	Cols            int
	RemovalDelay    time.Duration // delay before matched tiles are detached visually
	CompletionDelay time.Duration // delay before the final score is announced
}

// DefaultOptions returns the classic 10x20 board.
func DefaultOptions() Options {
	return Options{
		Rows:            10,
		Cols:            20,
		RemovalDelay:    500 * time.Millisecond,
		CompletionDelay: 600 * time.Millisecond,
	}
}

// Session orchestrates one board: generation, drags, scoring and completion.
// It is driven by a single goroutine; methods are not safe for concurrent use.
type Session struct {
	opts  Options
	rng   *rand.Rand
	view  View
	store *TileStore

	tracker *Tracker
	hits    *HitTester

	score      int
	generation uint64
	tasks      []Task
}

// NewSession creates a session and generates its first grid.
// view may be nil, in which case nothing is hit-tested or displayed.
func NewSession(opts Options, seed int64, view View) *Session {
	s := &Session{
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
		view: view,
	}
	var hl Highlighter
	var centers CenterSource
	if view != nil {
		hl, centers = view, view
	}
	s.tracker = NewTracker(hl)
	s.hits = NewHitTester(s.tracker, centers)
	s.Start()
	return s
}

// Start generates a full grid, zeroes the score and clears any selection.
func (s *Session) Start() {
	s.Reset()
}

// Reset is Start under the name the "new game" trigger uses.
// Pending tasks from the previous grid are discarded.
func (s *Session) Reset() {
	if s.tracker.Active() {
		s.tracker.EndDrag()
		if s.view != nil {
			s.view.HideDragRect()
		}
	}
	s.generation++
	s.store = NewTileStore(Generate(s.opts.Rows, s.opts.Cols, s.rng))
	s.score = 0
	s.tasks = nil
}

// OnPointerDown starts a drag on a live tile. ok is false when the pointer
// is not over any tile. Returns whether a drag started.
func (s *Session) OnPointerDown(p core.Point, tileID int, ok bool) bool {
	if !ok {
		return false
	}
	if _, alive := s.store.Find(tileID); !alive {
		return false
	}
	if !s.tracker.BeginDrag(p, tileID) {
		return false
	}
	if s.view != nil {
		s.view.ShowDragRect(core.RectFromCorners(p, p))
	}
	return true
}

// OnPointerMove reconciles the selection with the rectangle from the anchor
// to p and updates the displayed rectangle. Ignored when idle.
func (s *Session) OnPointerMove(p core.Point) {
	if !s.tracker.Active() {
		return
	}
	rect, ok := s.hits.Update(p, s.store.Alive())
	if ok && s.view != nil {
		s.view.ShowDragRect(rect)
	}
}

// OnPointerEnd finishes the drag and evaluates the selection.
// Matches update the store and score synchronously and schedule the
// detach task (and the announce task when the board is cleared).
func (s *Session) OnPointerEnd() MatchResult {
	if !s.tracker.Active() {
		return MatchResult{}
	}
	ids := s.tracker.EndDrag()
	if s.view != nil {
		s.view.HideDragRect()
	}

	res := Evaluate(s.store, ids)
	if !res.Matched {
		return res
	}

	s.score += res.Gained
	s.tasks = append(s.tasks, Task{
		Kind:       TaskDetach,
		Generation: s.generation,
		Delay:      s.opts.RemovalDelay,
		IDs:        res.Removed,
	})
	if res.Cleared {
		s.tasks = append(s.tasks, Task{
			Kind:       TaskAnnounce,
			Generation: s.generation,
			Delay:      s.opts.CompletionDelay,
			FinalScore: s.score,
		})
	}
	return res
}

// Tasks returns and clears the tasks scheduled since the last call.
func (s *Session) Tasks() []Task {
	tasks := s.tasks
	s.tasks = nil
	return tasks
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Generation returns a counter incremented on every reset.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Rows returns the grid row count.
func (s *Session) Rows() int {
	return s.opts.Rows
}

// Cols returns the grid column count.
func (s *Session) Cols() int {
	return s.opts.Cols
}

// Tiles returns the live tiles.
func (s *Session) Tiles() []Tile {
	return s.store.Alive()
}

// Remaining returns the number of live tiles.
func (s *Session) Remaining() int {
	return s.store.Len()
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool {
	return s.tracker.Active()
}

// Selected reports whether a tile is part of the current selection.
func (s *Session) Selected(id int) bool {
	return s.tracker.Contains(id)
}

// Selection returns the selected ids in ascending order.
func (s *Session) Selection() []int {
	return s.tracker.Selected()
}

// SelectionSum returns the running sum of the current selection.
// Display only: matches are decided in OnPointerEnd.
func (s *Session) SelectionSum() int {
	return SelectionSum(s.store, s.tracker.Selected())
}
