package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-apples/internal/config"
	"github.com/vovakirdan/tui-apples/internal/core"
	"github.com/vovakirdan/tui-apples/internal/game"
	"github.com/vovakirdan/tui-apples/internal/storage"
)

const newGameLabel = "[ New Game ]"

// Options configures the board model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Theme   Theme
	Store   *storage.Store // Round history; may be nil
	Logger  *log.Logger    // nil discards all output
}

// Model is the Bubble Tea model for the apple board.
type Model struct {
	session *game.Session
	board   *boardView
	screen  *core.Screen
	theme   Theme
	keys    KeyMap
	help    help.Model
	history historyView
	store   *storage.Store
	logger  *log.Logger
	cfg     config.Config

	width      int
	height     int
	newGameBox core.Box
	announce   *game.Task // Completion waiting for acknowledgment

	showHistory bool
	roundStart  time.Time
	best        int
	rounds      int
	quitting    bool

	now func() time.Time
}

// NewModel creates a model with a freshly generated board.
func NewModel(opts Options) Model {
	cfg := opts.Config
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	theme := opts.Theme
	if theme.Cells == nil {
		theme = DefaultTheme()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	layout := NewLayout(rt.ScreenW, cfg.Grid.Rows, cfg.Grid.Cols, cfg.Layout.CellWidth, cfg.Layout.CellHeight)
	board := newBoardView(layout)
	session := game.NewSession(game.Options{
		Rows:            cfg.Grid.Rows,
		Cols:            cfg.Grid.Cols,
		RemovalDelay:    cfg.Timing.RemovalDelay(),
		CompletionDelay: cfg.Timing.CompletionDelay(),
	}, rt.Seed, board)
	board.reset(session.Tiles())

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		session:    session,
		board:      board,
		screen:     core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		theme:      theme,
		keys:       DefaultKeyMap(),
		help:       h,
		history:    newHistoryView(rt.ScreenW, rt.ScreenH),
		store:      opts.Store,
		logger:     logger,
		cfg:        cfg,
		width:      rt.ScreenW,
		height:     rt.ScreenH,
		newGameBox: newGameButton(layout),
		now:        time.Now,
	}
	m.roundStart = m.now()
	m.refreshStats()

	logger.Info("session started",
		"seed", rt.Seed,
		"rows", cfg.Grid.Rows,
		"cols", cfg.Grid.Cols,
		"generation", session.Generation(),
	)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("apples")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handlePointer(pointerFromMouse(msg))

	case TaskMsg:
		return m.handleTask(msg.Task)

	case tea.WindowSizeMsg:
		cmd := m.resize(msg.Width, msg.Height)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.closeRound()
		m.quitting = true
		m.logger.Info("quit", "rounds", m.rounds)
		return m, tea.Quit
	}

	if m.showHistory {
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, m.keys.Back):
			m.showHistory = false
		case key.Matches(msg, m.keys.Up, m.keys.Down):
			m.history.table, cmd = m.history.table.Update(msg)
		}
		return m, cmd
	}

	if m.announce != nil {
		if key.Matches(msg, m.keys.Confirm, m.keys.NewGame) {
			m.newGame()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NewGame):
		m.newGame()
	case key.Matches(msg, m.keys.History):
		return m, m.openHistory()
	}
	return m, nil
}

// pointerFromMouse maps left-button mouse activity onto pointer phases.
// Other buttons and wheel events map to PointerNone.
func pointerFromMouse(msg tea.MouseMsg) core.PointerEvent {
	ev := core.PointerEvent{At: core.Pt(msg.X, msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			ev.Kind = core.PointerDown
		}
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMove
	case tea.MouseActionRelease:
		ev.Kind = core.PointerUp
	}
	return ev
}

// handlePointer routes a pointer event to the session or the HUD.
func (m Model) handlePointer(ev core.PointerEvent) (tea.Model, tea.Cmd) {
	if ev.Kind == core.PointerUp {
		return m, m.finishDrag()
	}
	if m.showHistory || !m.fits() {
		return m, nil
	}
	x, y := int(ev.At.X), int(ev.At.Y)

	switch ev.Kind {
	case core.PointerDown:
		if m.announce != nil || m.newGameBox.Contains(x, y) {
			m.newGame()
			return m, nil
		}
		id, ok := m.board.layout.TileAt(x, y)
		if m.session.OnPointerDown(ev.At, id, ok) {
			m.logger.Debug("drag started", "tile", id, "x", x, "y", y)
		}

	case core.PointerMove:
		m.session.OnPointerMove(ev.At)
	}
	return m, nil
}

// finishDrag ends the active drag, if any, evaluates the selection and
// schedules the deferred tasks.
func (m *Model) finishDrag() tea.Cmd {
	if !m.session.Dragging() {
		return nil
	}

	res := m.session.OnPointerEnd()
	m.logger.Debug("selection evaluated",
		"tiles", len(res.Selected),
		"sum", res.Sum,
		"matched", res.Matched,
	)
	if !res.Matched {
		return nil
	}

	m.board.markRemoving(res.Removed)
	m.logger.Info("match",
		"removed", len(res.Removed),
		"score", m.session.Score(),
		"remaining", m.session.Remaining(),
	)
	return scheduleTasks(m.session.Tasks())
}

// handleTask runs a deferred task unless the board it was scheduled for
// has been replaced.
func (m Model) handleTask(task game.Task) (tea.Model, tea.Cmd) {
	if task.Generation != m.session.Generation() {
		m.logger.Debug("stale task dropped",
			"kind", task.Kind,
			"generation", task.Generation,
			"current", m.session.Generation(),
		)
		return m, nil
	}

	switch task.Kind {
	case game.TaskDetach:
		m.board.detach(task.IDs)
	case game.TaskAnnounce:
		m.announce = &task
		m.logger.Info("board cleared",
			"score", task.FinalScore,
			"duration", m.now().Sub(m.roundStart).Round(time.Millisecond),
		)
	}
	return m, nil
}

// newGame records the current round and generates a fresh board.
func (m *Model) newGame() {
	m.closeRound()
	m.session.Reset()
	m.board.reset(m.session.Tiles())
	m.roundStart = m.now()
	m.logger.Info("new board", "generation", m.session.Generation())
}

// closeRound records the current round, if it counts: a cleared board
// always does, even before its announcement arrives, an abandoned one only
// when something was scored.
func (m *Model) closeRound() {
	round := storage.Round{
		Score:     m.session.Score(),
		Tiles:     m.session.Rows() * m.session.Cols(),
		Completed: m.announce != nil || m.session.Remaining() == 0,
		Duration:  m.now().Sub(m.roundStart),
	}
	m.announce = nil
	if !round.Completed && round.Score == 0 {
		return
	}
	m.recordRound(round)
}

func (m *Model) recordRound(r storage.Round) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(r); err != nil {
		m.logger.Warn("cannot record round", "err", err)
		return
	}
	m.refreshStats()
}

// refreshStats reloads the HUD counters from the store.
func (m *Model) refreshStats() {
	if m.store == nil {
		return
	}
	best, err := m.store.BestScore()
	if err != nil {
		m.logger.Warn("cannot read best score", "err", err)
		return
	}
	rounds, err := m.store.RoundCount()
	if err != nil {
		m.logger.Warn("cannot count rounds", "err", err)
		return
	}
	m.best, m.rounds = best, rounds
}

// openHistory ends any drag in progress and shows the round history.
func (m *Model) openHistory() tea.Cmd {
	cmd := m.finishDrag()
	if err := m.history.load(m.store); err != nil {
		m.logger.Warn("cannot load rounds", "err", err)
	}
	m.showHistory = true
	return cmd
}

// resize relayouts the board for a new terminal size. A drag in progress
// is finished first since its anchor is in the old layout's cells. The
// board itself is untouched.
func (m *Model) resize(width, height int) tea.Cmd {
	cmd := m.finishDrag()
	m.width, m.height = width, height
	m.screen.Resize(width, max(height-1, 1))
	m.board.layout = NewLayout(width, m.cfg.Grid.Rows, m.cfg.Grid.Cols, m.cfg.Layout.CellWidth, m.cfg.Layout.CellHeight)
	m.newGameBox = newGameButton(m.board.layout)
	m.help.Width = width
	m.history.resize(width, height)
	return cmd
}

// fits reports whether the terminal shows the whole board.
func (m Model) fits() bool {
	minW, minH := m.board.layout.MinSize()
	return m.width >= minW && m.height >= minH
}

// newGameButton places the HUD button flush with the board's right edge.
func newGameButton(l Layout) core.Box {
	w := lipgloss.Width(newGameLabel)
	x := l.Bounds().Right() - w
	if x < 0 {
		x = 0
	}
	return core.NewBox(x, 0, w, 1)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.theme.Help.Render(m.help.View(m.keys))

	if m.showHistory {
		return m.history.view(m.theme, helpView)
	}
	if m.announce != nil {
		return m.renderCompletion(m.announce.FinalScore)
	}

	if !m.fits() {
		minW, minH := m.board.layout.MinSize()
		return m.renderTooSmall(minW, minH)
	}

	m.screen.Clear()
	m.drawHUD()
	m.board.draw(m.screen)

	return RenderScreen(m.screen, m.theme) + "\n" + helpView
}

// drawHUD draws the status line above the board.
func (m Model) drawHUD() {
	x := m.board.layout.OriginX

	status := fmt.Sprintf("Score %d  ", m.session.Score())
	m.screen.DrawText(x, 0, status, core.ColorAccent)
	x += len(status)

	sum := fmt.Sprintf("Sum %d  ", m.session.SelectionSum())
	sumColor := core.ColorHUD
	if m.session.Dragging() && m.session.SelectionSum() == game.TargetSum {
		sumColor = core.ColorMatch
	}
	m.screen.DrawText(x, 0, sum, sumColor)
	x += len(sum)

	rest := fmt.Sprintf("Left %d  Best %d  Rounds %d", m.session.Remaining(), m.best, m.rounds)
	m.screen.DrawText(x, 0, rest, core.ColorDim)

	m.screen.DrawText(m.newGameBox.X, m.newGameBox.Y, newGameLabel, core.ColorAccent)
}

// renderCompletion renders the final score overlay.
func (m Model) renderCompletion(score int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.OverlayTitle.Render("ALL APPLES CLEARED"),
		"",
		m.theme.OverlayText.Render(fmt.Sprintf("Final score: %d", score)),
		"",
		m.theme.Help.Render("enter or click for a new board"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.OverlayBox.Render(body))
}

// renderTooSmall renders the message shown when the board does not fit.
func (m Model) renderTooSmall(minW, minH int) string {
	msg := fmt.Sprintf("Terminal too small\n\nneed %dx%d, have %dx%d\n\nq to quit", minW, minH, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.OverlayText.Render(msg))
}

// Run starts the board with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
