package tui

import (
	"fmt"
	"strings"

	"mindmate/internal/app"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// logOverlay is the quick activity logger: number keys toggle vocabulary
// tags, the input takes an optional note, enter saves.
type logOverlay struct {
	visible bool
	tags    map[int]bool
	note    textinput.Model
}

func newLogOverlay() logOverlay {
	ti := textinput.New()
	ti.Placeholder = "Add a quick note (optional)"
	ti.CharLimit = 500
	return logOverlay{
		tags: map[int]bool{},
		note: ti,
	}
}

func (o *logOverlay) focus() tea.Cmd {
	return o.note.Focus()
}

func (o *logOverlay) reset() {
	o.tags = map[int]bool{}
	o.note.Reset()
}

func (o *logOverlay) selectedTags() []string {
	var out []string
	for i, tag := range app.TagVocabulary {
		if o.tags[i] {
			out = append(out, tag)
		}
	}
	return out
}

func (m *Model) updateLogOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.logOverlay.reset()
		m.logOverlay.visible = false
		m.errText = ""
		m.input.Focus()
		return m, nil
	case "enter":
		tags := m.logOverlay.selectedTags()
		note := m.logOverlay.note.Value()
		return m, func() tea.Msg {
			entry, err := m.app.Activities.Add(tags, note)
			return entrySavedMsg{entry: entry, err: err}
		}
	case "1", "2", "3", "4", "5", "6", "7", "8":
		// Toggle tags by number while the note is empty so digits still
		// work inside note text.
		if strings.TrimSpace(m.logOverlay.note.Value()) == "" {
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(app.TagVocabulary) {
				m.logOverlay.tags[idx] = !m.logOverlay.tags[idx]
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.logOverlay.note, cmd = m.logOverlay.note.Update(msg)
	return m, cmd
}

func (o *logOverlay) view(theme Theme, width int) string {
	var b strings.Builder
	b.WriteString(theme.OverlayTi.Render("Log an activity"))
	b.WriteString("\n\n")
	for i, tag := range app.TagVocabulary {
		style := theme.TagOff
		marker := " "
		if o.tags[i] {
			style = theme.TagOn
			marker = "✓"
		}
		b.WriteString(style.Render(fmt.Sprintf("  %d [%s] %s", i+1, marker, tag)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(o.note.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Footer.Render("1-8 toggle tags | enter save | esc cancel"))
	return theme.Overlay.Width(width - 4).Render(b.String())
}
