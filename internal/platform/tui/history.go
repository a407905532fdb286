package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-apples/internal/storage"
)

// maxHistoryRows is how many rounds the history table loads.
const maxHistoryRows = 100

// historyView shows the rounds played in this process.
type historyView struct {
	table   table.Model
	entries []storage.RoundEntry
	width   int
	height  int
}

func newHistoryView(width, height int) historyView {
	h := historyView{width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table with appropriate columns.
func (h historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Finished", Width: 10},
	}

	tableHeight := h.height - 8 // Leave room for title, help, and margins
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (h *historyView) resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateTableRows()
}

// load reads the most recent rounds from the store.
func (h *historyView) load(store *storage.Store) error {
	h.entries = nil
	defer h.updateTableRows()
	if store == nil {
		return nil
	}
	entries, err := store.RecentRounds(maxHistoryRows)
	if err != nil {
		return err
	}
	h.entries = entries
	return nil
}

// updateTableRows updates the table with the loaded rounds.
func (h *historyView) updateTableRows() {
	rows := make([]table.Row, len(h.entries))
	for i, e := range h.entries {
		result := "abandoned"
		if e.Completed {
			result = "cleared"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", e.ID),
			fmt.Sprintf("%d/%d", e.Score, e.Tiles),
			result,
			formatDuration(e.Duration),
			e.CreatedAt.Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// view renders the history screen.
func (h historyView) view(theme Theme, helpView string) string {
	var b strings.Builder

	b.WriteString(theme.HistoryTitle.Render("ROUNDS THIS RUN"))
	b.WriteString("\n")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(h.entries) == 0 {
		b.WriteString(frame.Render(theme.Empty.Render("No rounds finished yet.\nClear a board or start a new game.")))
	} else {
		b.WriteString(frame.Render(h.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpView)

	return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, b.String())
}

// formatDuration renders a duration as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
