package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/diary"
	"github.com/sadopc/moodcal/internal/export"
	"github.com/sadopc/moodcal/internal/store"
	"github.com/sadopc/moodcal/internal/tracker"
)

type diaryModel struct {
	store  *store.Store
	engine *tracker.Engine
	clock  dates.Clock
	width  int
	height int

	filter  diary.Filter
	entries []store.MoodEntry
	cursor  int

	confirmingDel bool

	exportPicking bool
	exportCursor  int

	// Name prompt shown before an HTML export, for the cover page.
	nameForm   *huh.Form
	nameActive bool
	authorName *string
}

var exportFormats = []string{"CSV", "JSON", "Printable HTML"}

func newDiaryModel(s *store.Store, e *tracker.Engine, clock dates.Clock) diaryModel {
	name := ""
	return diaryModel{
		store:      s,
		engine:     e,
		clock:      clock,
		filter:     diary.FilterAll,
		authorName: &name,
	}
}

func (d *diaryModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d diaryModel) formActive() bool { return d.nameActive }

type diaryDataMsg struct {
	entries []store.MoodEntry
}

func (d diaryModel) refresh() tea.Cmd {
	return func() tea.Msg {
		all, err := d.store.AllEntries()
		if err != nil {
			return errorStatus(err)
		}
		return diaryDataMsg{entries: diary.Project(all, d.filter, d.clock)}
	}
}

func (d diaryModel) update(msg tea.Msg) (diaryModel, tea.Cmd) {
	if d.nameActive && d.nameForm != nil {
		return d.updateNameForm(msg)
	}

	switch msg := msg.(type) {
	case diaryDataMsg:
		d.entries = msg.entries
		if d.cursor >= len(d.entries) {
			d.cursor = max(0, len(d.entries)-1)
		}
		return d, nil

	case tea.KeyMsg:
		if d.confirmingDel {
			return d.updateDeleteConfirm(msg)
		}
		if d.exportPicking {
			return d.updateExportPicker(msg)
		}

		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.entries)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Filter):
			d.filter = nextFilter(d.filter)
			return d, d.refresh()
		case key.Matches(msg, keys.Delete):
			if len(d.entries) > 0 {
				d.confirmingDel = true
			}
		case key.Matches(msg, keys.Export):
			if len(d.entries) == 0 {
				return d, func() tea.Msg {
					return statusMsg{text: "No entries to export. Start logging your moods first!", isError: true}
				}
			}
			d.exportPicking = true
			d.exportCursor = 0
		}
	}
	return d, nil
}

func nextFilter(f diary.Filter) diary.Filter {
	for i, cur := range diary.Filters {
		if cur == f {
			return diary.Filters[(i+1)%len(diary.Filters)]
		}
	}
	return diary.FilterAll
}

func (d diaryModel) updateDeleteConfirm(msg tea.KeyMsg) (diaryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		d.confirmingDel = false
		if d.cursor >= len(d.entries) {
			return d, nil
		}
		date := d.entries[d.cursor].Date
		return d, func() tea.Msg {
			if err := d.store.DeleteEntry(date); err != nil {
				return errorStatus(err)
			}
			if err := d.engine.OnEntryDeleted(date); err != nil {
				return errorStatus(err)
			}
			return entryDeletedMsg{date: date}
		}
	case key.Matches(msg, keys.Back):
		d.confirmingDel = false
	}
	return d, nil
}

func (d diaryModel) updateExportPicker(msg tea.KeyMsg) (diaryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if d.exportCursor > 0 {
			d.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if d.exportCursor < len(exportFormats)-1 {
			d.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		d.exportPicking = false
		if d.exportCursor == 2 {
			// The printable diary carries the author's name on its cover.
			*d.authorName = ""
			d.nameForm = huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Your full name for the diary title page").Value(d.authorName),
			)).WithShowHelp(true)
			d.nameActive = true
			return d, d.nameForm.Init()
		}
		return d, d.doExport(d.exportCursor, "")
	case key.Matches(msg, keys.Back):
		d.exportPicking = false
	}
	return d, nil
}

func (d diaryModel) updateNameForm(msg tea.Msg) (diaryModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.nameActive = false
			d.nameForm = nil
			return d, nil
		}
	}

	form, cmd := d.nameForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.nameForm = f
	}

	if d.nameForm.State == huh.StateCompleted {
		d.nameActive = false
		return d, d.doExport(2, strings.TrimSpace(*d.authorName))
	}

	return d, cmd
}

func (d diaryModel) doExport(format int, author string) tea.Cmd {
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return errorStatus(err)
		}
		dateStr := dates.Format(dates.Today(d.clock))

		var path string
		switch format {
		case 0:
			path = filepath.Join(home, fmt.Sprintf("moodcal-export-%s.csv", dateStr))
			if err := export.ToCSV(d.entries, path); err != nil {
				return errorStatus(err)
			}
		case 1:
			path = filepath.Join(home, fmt.Sprintf("moodcal-export-%s.json", dateStr))
			if err := export.ToJSON(d.entries, path); err != nil {
				return errorStatus(err)
			}
		default:
			all, err := d.store.AllEntries()
			if err != nil {
				return errorStatus(err)
			}
			doc := diary.BuildDocument(all, author, d.clock)
			path = filepath.Join(home, fmt.Sprintf("moodcal-diary-%s.html", dateStr))
			if err := export.ToHTML(doc, path); err != nil {
				return errorStatus(err)
			}
		}

		return exportDoneMsg{path: path}
	}
}

func (d diaryModel) view() string {
	w := d.width - 4

	if d.nameActive && d.nameForm != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Export Printable Diary"), "", d.nameForm.View())
		return activePanelStyle.Width(w).Render(content)
	}

	if d.exportPicking {
		return d.renderExportPicker(w)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Diary"), "  ",
		highlightStyle.Render(d.filter.Label()),
	)

	if len(d.entries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No diary entries yet."),
			mutedStyle.Render("Start logging your moods to create your personalized diary."),
			"",
			mutedStyle.Render("f: filter"),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, header, "")

	for i, e := range d.entries {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		photo := ""
		if e.Image != "" {
			photo = mutedStyle.Render(" 📷")
		}
		line := style.Render(fmt.Sprintf("%s%s %s  %s", cursor, e.Mood.Emoji(), formatDisplayDate(e.Date), e.Mood.Label())) + photo
		rows = append(rows, line)

		if i == d.cursor {
			rows = append(rows, mutedStyle.Render("      "+truncateStory(e.Story, w-10)))
		}
	}

	rows = append(rows, "")
	if d.confirmingDel {
		date := d.entries[d.cursor].Date
		rows = append(rows, errorStyle.Render(fmt.Sprintf(
			"  Delete the entry for %s? This cannot be undone. enter: confirm  esc: cancel",
			formatDisplayDate(date),
		)))
	} else {
		rows = append(rows, mutedStyle.Render("  f: filter  d: delete  e: export"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d diaryModel) renderExportPicker(w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Export Format"), "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == d.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: export  esc: cancel"))
	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func truncateStory(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width < 10 {
		width = 10
	}
	// Rune-wise so multibyte text is never cut mid-character.
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s
}
