package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodcal/internal/store"
	"github.com/sadopc/moodcal/internal/tracker"
)

// entryForm is the mood-logging form, shared by the calendar and tracker
// views. Opening it for a date with an existing entry pre-fills the fields.
type entryForm struct {
	store  *store.Store
	engine *tracker.Engine

	active  bool
	editing bool // an entry already exists for the date
	date    string
	form    *huh.Form

	// Field pointers survive value copies of the model.
	formMood    *string
	formStory   *string
	formImage   *string // path to a new photo, empty to keep/skip
	removePhoto *bool

	existingImage string
}

func newEntryForm(s *store.Store, e *tracker.Engine) entryForm {
	mood, story, image := "", "", ""
	remove := false
	return entryForm{
		store:       s,
		engine:      e,
		formMood:    &mood,
		formStory:   &story,
		formImage:   &image,
		removePhoto: &remove,
	}
}

// open builds the form for a date. The caller has already rejected future
// dates.
func (f entryForm) open(date string) (entryForm, tea.Cmd) {
	f.date = date
	f.editing = false
	f.existingImage = ""
	*f.formMood = ""
	*f.formStory = ""
	*f.formImage = ""
	*f.removePhoto = false

	existing, err := f.store.Entry(date)
	if err != nil {
		return f, func() tea.Msg { return errorStatus(err) }
	}
	if existing != nil {
		f.editing = true
		*f.formMood = string(existing.Mood)
		*f.formStory = existing.Story
		f.existingImage = existing.Image
	}

	moodOptions := make([]huh.Option[string], len(store.Moods))
	for i, m := range store.Moods {
		moodOptions[i] = huh.NewOption(fmt.Sprintf("%s %s", m.Emoji(), m.Label()), string(m))
	}

	fields := []huh.Field{
		huh.NewSelect[string]().Title("How are you feeling?").Options(moodOptions...).Value(f.formMood),
		huh.NewText().Title("Your story").Value(f.formStory),
		huh.NewInput().Title("Photo path (optional)").Value(f.formImage),
	}
	if f.existingImage != "" {
		fields = append(fields, huh.NewConfirm().Title("Remove existing photo?").Value(f.removePhoto))
	}

	f.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true).WithShowErrors(true)
	f.active = true
	return f, f.form.Init()
}

func (f entryForm) update(msg tea.Msg) (entryForm, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			f.active = false
			f.form = nil
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		f.active = false
		return f, f.submit()
	}

	return f, cmd
}

func (f entryForm) submit() tea.Cmd {
	date := f.date
	mood := store.Mood(*f.formMood)
	story := *f.formStory
	imagePath := *f.formImage
	image := f.existingImage
	if *f.removePhoto {
		image = ""
	}

	return func() tea.Msg {
		if imagePath != "" {
			encoded, err := store.EncodeImage(imagePath)
			if err != nil {
				return errorStatus(err)
			}
			image = encoded
		}

		if _, err := f.store.SaveEntry(date, mood, story, image); err != nil {
			return errorStatus(err)
		}

		completed, err := f.engine.OnEntrySaved(date)
		if err != nil {
			return errorStatus(err)
		}
		return entrySavedMsg{date: date, trackerCompleted: completed}
	}
}

func (f entryForm) view(width int) string {
	title := titleStyle.Render("Log Your Mood — " + formatDisplayDate(f.date))
	if f.editing {
		title = titleStyle.Render("Edit Mood — " + formatDisplayDate(f.date))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", f.form.View())
	return activePanelStyle.Width(width).Render(content)
}
