package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-apples/internal/core"
)

// Theme defines the visual styling of the board and its overlays.
type Theme struct {
	Cells map[core.Color]lipgloss.Style

	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style
	HistoryTitle lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:  lipgloss.NewStyle(),
			core.ColorTile:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Apple red
			core.ColorSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("226")).Bold(true),
			core.ColorRemoving: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
			core.ColorDrag:     lipgloss.NewStyle().Foreground(lipgloss.Color("45")), // Marquee cyan
			core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			core.ColorMatch:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true), // Lime green
			core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},

		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 4).
			Align(lipgloss.Center),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HistoryTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).MarginBottom(1),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Cells[core.ColorTile] = lipgloss.NewStyle().Bold(true)
	theme.Cells[core.ColorSelected] = lipgloss.NewStyle().Reverse(true).Bold(true)
	theme.Cells[core.ColorRemoving] = lipgloss.NewStyle().Faint(true)
	theme.Cells[core.ColorDrag] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Cells[core.ColorMatch] = lipgloss.NewStyle().Underline(true).Bold(true)
	theme.OverlayBox = theme.OverlayBox.BorderForeground(lipgloss.Color("250"))
	theme.OverlayTitle = lipgloss.NewStyle().Bold(true)
	return theme
}

// ThemeByName returns a theme by its CLI name.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "mono", "monochrome":
		return MonochromeTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want default or mono)", name)
	}
}

// style returns the style for a cell color.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.Cells[c]; ok {
		return s
	}
	return t.Cells[core.ColorDefault]
}
