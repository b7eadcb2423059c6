package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/diary"
	"github.com/sadopc/moodcal/internal/store"
)

type statsModel struct {
	store  *store.Store
	clock  dates.Clock
	width  int
	height int

	rangeFilter diary.Filter
	entries     []store.MoodEntry
	counts      map[store.Mood]int

	chart barchart.Model
}

func newStatsModel(s *store.Store, clock dates.Clock) statsModel {
	return statsModel{
		store:       s,
		clock:       clock,
		rangeFilter: diary.FilterAll,
		chart:       barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type statsDataMsg struct {
	entries []store.MoodEntry
}

func (s statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		all, err := s.store.AllEntries()
		if err != nil {
			return errorStatus(err)
		}
		return statsDataMsg{entries: diary.Project(all, s.rangeFilter, s.clock)}
	}
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		s.entries = msg.entries
		s.counts = make(map[store.Mood]int, len(store.Moods))
		for _, e := range s.entries {
			s.counts[e.Mood]++
		}
		s.buildChart()
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Filter) {
			s.rangeFilter = nextFilter(s.rangeFilter)
			return s, s.refresh()
		}
	}
	return s, nil
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	// One bar per mood, in declaration order so the chart stays stable
	// between refreshes.
	var bars []barchart.BarData
	for _, m := range store.Moods {
		style := lipgloss.NewStyle().Foreground(moodColor(m))
		bars = append(bars, barchart.BarData{
			Label: m.Emoji(),
			Values: []barchart.BarValue{{
				Name:  m.Label(),
				Value: float64(s.counts[m]),
				Style: style,
			}},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Mood Statistics"), "  ",
		highlightStyle.Render(s.rangeFilter.Label()),
	)

	if len(s.entries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No data for this period."),
			"",
			mutedStyle.Render("f: change range"),
		)
		return panelStyle.Width(w).Render(content)
	}

	chartView := s.chart.View()
	tableView := s.renderMoodTable(w)
	summary := s.renderSummary()
	nav := mutedStyle.Render("  f: change range")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", summary, "", tableView, "", nav,
		),
	)
}

func (s statsModel) renderSummary() string {
	top, topCount := s.mostCommonMood()
	total := fmt.Sprintf("Total entries: %d", len(s.entries))
	if topCount == 0 {
		return "  " + highlightStyle.Render(total)
	}
	common := fmt.Sprintf("Most common: %s %s (%d)", top.Emoji(), top.Label(), topCount)
	return "  " + highlightStyle.Render(total) + "   " + highlightStyle.Render(common)
}

// mostCommonMood breaks ties by declaration order.
func (s statsModel) mostCommonMood() (store.Mood, int) {
	var best store.Mood
	bestCount := 0
	for _, m := range store.Moods {
		if s.counts[m] > bestCount {
			best, bestCount = m, s.counts[m]
		}
	}
	return best, bestCount
}

func (s statsModel) renderMoodTable(w int) string {
	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-4s %-12s %8s %8s", "", "Mood", "Count", "Share"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", max(0, min(w-6, 36)))))

	total := len(s.entries)
	for _, m := range store.Moods {
		count := s.counts[m]
		if count == 0 {
			continue
		}
		dot := lipgloss.NewStyle().Foreground(moodColor(m)).Render("●")
		share := float64(count) / float64(total) * 100
		rows = append(rows, fmt.Sprintf("  %s %s %-12s %8d %7.0f%%",
			dot, m.Emoji(), m.Label(), count, share))
	}

	return strings.Join(rows, "\n")
}
