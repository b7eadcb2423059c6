package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/store"
	"github.com/sadopc/moodcal/internal/tracker"
)

type calendarModel struct {
	store  *store.Store
	engine *tracker.Engine
	clock  dates.Clock
	width  int
	height int

	// Displayed month. minMonth is captured once at construction and does
	// not advance across a year boundary within a session.
	year     int
	month    time.Month
	minMonth time.Time

	cursor  int // day of month under the cursor
	entries map[string]store.MoodEntry

	form           entryForm
	confirmingDel  bool
	pendingDelDate string
}

func newCalendarModel(s *store.Store, e *tracker.Engine, clock dates.Clock) calendarModel {
	today := dates.Today(clock)
	m := calendarModel{
		store:    s,
		engine:   e,
		clock:    clock,
		year:     today.Year(),
		month:    today.Month(),
		minMonth: dates.MinNavigableMonth(clock),
		cursor:   today.Day(),
		form:     newEntryForm(s, e),
	}
	// Start no earlier than the minimum navigable month.
	if time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local).Before(m.minMonth) {
		m.year, m.month = m.minMonth.Year(), m.minMonth.Month()
		m.cursor = 1
	}
	return m
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c calendarModel) formActive() bool { return c.form.active }

type calendarDataMsg struct {
	entries map[string]store.MoodEntry
}

func (c calendarModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, _ := c.store.AllEntries()
		return calendarDataMsg{entries: entries}
	}
}

func (c calendarModel) cursorDate() string {
	return dates.Format(time.Date(c.year, c.month, c.cursor, 0, 0, 0, 0, time.Local))
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	if c.form.active {
		var cmd tea.Cmd
		c.form, cmd = c.form.update(msg)
		return c, cmd
	}

	switch msg := msg.(type) {
	case calendarDataMsg:
		c.entries = msg.entries
		return c, nil

	case tea.KeyMsg:
		if c.confirmingDel {
			return c.updateDeleteConfirm(msg)
		}

		switch {
		case key.Matches(msg, keys.Left):
			if c.cursor > 1 {
				c.cursor--
			}
		case key.Matches(msg, keys.Right):
			if c.cursor < dates.DaysInMonth(c.year, c.month) {
				c.cursor++
			}
		case key.Matches(msg, keys.Up):
			if c.cursor > 7 {
				c.cursor -= 7
			}
		case key.Matches(msg, keys.Down):
			if c.cursor+7 <= dates.DaysInMonth(c.year, c.month) {
				c.cursor += 7
			}
		case key.Matches(msg, keys.Prev):
			return c.previousMonth(), nil
		case key.Matches(msg, keys.Next):
			return c.nextMonth(), nil
		case key.Matches(msg, keys.Enter):
			return c.openDay()
		case key.Matches(msg, keys.Delete):
			date := c.cursorDate()
			if _, ok := c.entries[date]; ok {
				c.confirmingDel = true
				c.pendingDelDate = date
			}
		}
	}
	return c, nil
}

func (c calendarModel) updateDeleteConfirm(msg tea.KeyMsg) (calendarModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		date := c.pendingDelDate
		c.confirmingDel = false
		return c, func() tea.Msg {
			if err := c.store.DeleteEntry(date); err != nil {
				return errorStatus(err)
			}
			if err := c.engine.OnEntryDeleted(date); err != nil {
				return errorStatus(err)
			}
			return entryDeletedMsg{date: date}
		}
	case key.Matches(msg, keys.Back):
		c.confirmingDel = false
	}
	return c, nil
}

func (c calendarModel) openDay() (calendarModel, tea.Cmd) {
	date := c.cursorDate()
	day, err := dates.Parse(date)
	if err != nil {
		return c, func() tea.Msg { return errorStatus(err) }
	}
	if dates.IsFutureStrict(day, c.clock) {
		return c, func() tea.Msg {
			return statusMsg{text: "You can't add entries for future dates.", isError: true}
		}
	}
	var cmd tea.Cmd
	c.form, cmd = c.form.open(date)
	return c, cmd
}

// previousMonth is bounded below by the minimum navigable month.
func (c calendarModel) previousMonth() calendarModel {
	prev := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	if prev.Before(c.minMonth) {
		return c
	}
	c.year, c.month = prev.Year(), prev.Month()
	c.clampCursor()
	return c
}

// nextMonth is unbounded: future months are browsable even though their
// days are not selectable.
func (c calendarModel) nextMonth() calendarModel {
	next := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	c.year, c.month = next.Year(), next.Month()
	c.clampCursor()
	return c
}

func (c *calendarModel) clampCursor() {
	if days := dates.DaysInMonth(c.year, c.month); c.cursor > days {
		c.cursor = days
	}
}

func (c calendarModel) view() string {
	w := c.width - 4
	if c.form.active {
		return c.form.view(w)
	}

	title := titleStyle.Render(fmt.Sprintf("%s %d", c.month, c.year))

	atMin := !time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local).After(c.minMonth)
	nav := "  [ prev   ] next"
	if atMin {
		nav = "  [ ----   ] next"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, title, mutedStyle.Render(nav))

	var rows []string
	rows = append(rows, header, "")
	rows = append(rows, mutedStyle.Render("  Sun   Mon   Tue   Wed   Thu   Fri   Sat"))

	today := dates.Today(c.clock)
	first := int(dates.FirstWeekday(c.year, c.month))
	days := dates.DaysInMonth(c.year, c.month)

	// Six-week grid keeps the layout stable across months.
	var line strings.Builder
	for cell := 0; cell < 42; cell++ {
		day := cell - first + 1
		if day < 1 || day > days {
			line.WriteString("      ")
		} else {
			line.WriteString(c.renderDay(day, today))
		}
		if cell%7 == 6 {
			rows = append(rows, line.String())
			line.Reset()
		}
	}

	if c.confirmingDel {
		rows = append(rows, "")
		rows = append(rows, errorStyle.Render(
			fmt.Sprintf("  Delete the entry for %s? enter: confirm  esc: cancel", formatDisplayDate(c.pendingDelDate)),
		))
	} else {
		rows = append(rows, "")
		rows = append(rows, mutedStyle.Render("  enter: log mood  d: delete  [/]: change month"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (c calendarModel) renderDay(day int, today time.Time) string {
	date := dates.Format(time.Date(c.year, c.month, day, 0, 0, 0, 0, time.Local))
	entry, hasEntry := c.entries[date]

	cell := fmt.Sprintf("%3d", day)
	if hasEntry {
		cell = fmt.Sprintf("%3d%s", day, entry.Mood.Emoji())
	}

	d := time.Date(c.year, c.month, day, 0, 0, 0, 0, time.Local)
	style := normalItemStyle
	switch {
	case day == c.cursor:
		style = cursorCellStyle
	case dates.SameDay(d, today):
		style = todayCellStyle
	case dates.IsFutureStrict(d, c.clock):
		style = futureCellStyle
	case hasEntry:
		style = lipgloss.NewStyle().Foreground(moodColor(entry.Mood))
	}

	return style.Render(cell) + strings.Repeat(" ", 6-lipgloss.Width(cell))
}
