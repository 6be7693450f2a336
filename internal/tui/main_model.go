package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindmate/internal/app"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ActivitiesChangedMsg is delivered by the host when any writer logs an
// activity; the model reacts by recomputing the summary line.
type ActivitiesChangedMsg struct{}

type replyMsg struct {
	transcript []app.ChatMessage
	err        error
}

type entrySavedMsg struct {
	entry *app.ActivityEntry
	err   error
}

type Model struct {
	app   *app.Application
	theme Theme

	width  int
	height int
	ready  bool

	messages []app.ChatMessage
	summary  *app.DaySummary

	input  textarea.Model
	chatVP viewport.Model

	sending  bool
	showHelp bool
	errText  string

	logOverlay logOverlay
}

func New(application *app.Application) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type a message, Enter sends. Ctrl+L logs an activity."
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetHeight(1)
	ta.Prompt = " "
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return &Model{
		app:        application,
		theme:      NewTheme(),
		messages:   application.Session.Transcript(),
		summary:    application.Activities.Summary(),
		input:      ta,
		logOverlay: newLogOverlay(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ActivitiesChangedMsg:
		m.summary = m.app.Activities.Summary()
		return m, nil

	case replyMsg:
		m.sending = false
		if msg.err != nil {
			m.errText = msg.err.Error()
		} else {
			m.errText = ""
		}
		m.messages = msg.transcript
		m.refreshChat()
		return m, nil

	case entrySavedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.logOverlay.reset()
		m.logOverlay.visible = false
		m.summary = m.app.Activities.Summary()
		m.input.Focus()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.logOverlay.visible {
		m.logOverlay.note, cmd = m.logOverlay.note.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.logOverlay.visible {
		return m.updateLogOverlay(msg)
	}

	switch msg.String() {
	case "ctrl+l":
		m.logOverlay.visible = true
		m.input.Blur()
		return m, m.logOverlay.focus()
	case "ctrl+g":
		m.showHelp = !m.showHelp
		return m, nil
	case "esc":
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit
	case "enter":
		if m.sending {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		m.sending = true
		m.messages = append(m.messages, app.ChatMessage{Role: app.RoleUser, Content: text})
		m.refreshChat()
		return m, m.sendCmd(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		transcript, _, err := m.app.Session.Send(ctx, text)
		return replyMsg{transcript: transcript, err: err}
	}
}

func (m *Model) layout() {
	chatH := m.height - 6 // header, summary, input box, footer
	if chatH < 3 {
		chatH = 3
	}
	if !m.ready {
		m.chatVP = viewport.New(m.width, chatH)
		m.ready = true
	} else {
		m.chatVP.Width = m.width
		m.chatVP.Height = chatH
	}
	m.input.SetWidth(m.width - 4)
	m.refreshChat()
}

func (m *Model) refreshChat() {
	if !m.ready {
		return
	}
	m.chatVP.SetContent(m.renderMessages())
	m.chatVP.GotoBottom()
}

func (m *Model) renderMessages() string {
	width := m.chatVP.Width - 2
	if width < 20 {
		width = 20
	}
	body := lipgloss.NewStyle().Foreground(m.theme.TextPrimary).Width(width)

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		label := m.theme.RoleMate.Render("mindmate")
		if msg.Role == app.RoleUser {
			label = m.theme.RoleYou.Render("you")
		}
		b.WriteString(label + "\n")
		b.WriteString(body.Render(msg.Content) + "\n")
	}
	if m.sending {
		b.WriteString("\n" + m.theme.Summary.Render("mindmate is thinking…"))
	}
	return b.String()
}

func (m *Model) View() string {
	if !m.ready {
		return "loading…"
	}
	if m.logOverlay.visible {
		return m.logOverlay.view(m.theme, m.width)
	}
	if m.showHelp {
		return m.helpView()
	}

	part := app.DaypartOf(time.Now())
	header := m.theme.Header.Render(fmt.Sprintf("%s %s, MindMate", part.Emoji(), part.Greeting()))
	summary := m.theme.Summary.Render(m.summary.Banner())

	input := m.theme.InputBox.Width(m.width - 2).Render(m.input.View())

	footer := m.theme.Footer.Render("enter send | ctrl+l log activity | ctrl+g help | esc quit")
	if m.errText != "" {
		footer = m.theme.ErrText.Render(m.errText)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, summary, m.chatVP.View(), input, footer)
}

func (m *Model) helpView() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayTi.Render("mindmate help"))
	b.WriteString("\n\n")
	b.WriteString("  enter      send message\n")
	b.WriteString("  ctrl+l     open the activity logger\n")
	b.WriteString("  ctrl+g     toggle this help\n")
	b.WriteString("  esc        close / quit\n\n")
	b.WriteString(m.theme.Summary.Render("Ask \"what did I do today\" or \"summary\" for your day's details."))
	b.WriteString("\n")
	b.WriteString(m.theme.Summary.Render(fmt.Sprintf("Voice input arrives through your wake-word listener (%q).", m.app.Config.WakePhrase)))
	return m.theme.Overlay.Width(m.width - 4).Render(b.String())
}
