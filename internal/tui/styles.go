package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodcal/internal/store"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Per-mood colors, used by calendar cells and the stats chart.
var moodColors = map[store.Mood]lipgloss.Color{
	store.MoodHappy:    lipgloss.Color("#F1C40F"),
	store.MoodSad:      lipgloss.Color("#3498DB"),
	store.MoodAngry:    lipgloss.Color("#E74C3C"),
	store.MoodFearful:  lipgloss.Color("#9B59B6"),
	store.MoodContent:  lipgloss.Color("#2ECC71"),
	store.MoodExcited:  lipgloss.Color("#E67E22"),
	store.MoodAnxious:  lipgloss.Color("#95A5A6"),
	store.MoodLoved:    lipgloss.Color("#FF6B9D"),
	store.MoodTired:    lipgloss.Color("#34495E"),
	store.MoodStressed: lipgloss.Color("#C0392B"),
}

func moodColor(m store.Mood) lipgloss.Color {
	if c, ok := moodColors[m]; ok {
		return c
	}
	return colorPrimary
}

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Calendar cells
	todayCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	futureCellStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	cursorCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Reverse(true)
)
