// Package tui provides the Bubble Tea front end for the apples board.
// It maps mouse input onto the session, renders the board and runs the
// session's deferred tasks on timers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-apples/internal/game"
)

// TaskMsg delivers a scheduled session task once its delay has elapsed.
type TaskMsg struct {
	Task game.Task
}

// scheduleTasks turns session tasks into timer commands.
func scheduleTasks(tasks []game.Task) tea.Cmd {
	if len(tasks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, task := range tasks {
		cmds = append(cmds, scheduleTask(task))
	}
	return tea.Batch(cmds...)
}

func scheduleTask(task game.Task) tea.Cmd {
	if task.Delay <= 0 {
		return func() tea.Msg { return TaskMsg{Task: task} }
	}
	return tea.Tick(task.Delay, func(time.Time) tea.Msg {
		return TaskMsg{Task: task}
	})
}
