package tui

import (
	"strings"
	"testing"

	"mindmate/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.StorageRoot = t.TempDir()
	application, err := app.NewApplication(cfg)
	if err != nil {
		t.Fatalf("new application: %v", err)
	}
	t.Cleanup(func() { _ = application.Close() })

	m := New(application)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(*Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestModelStartsWithGreeting(t *testing.T) {
	m := newTestModel(t)
	if len(m.messages) != 1 || m.messages[0].Content != app.Greeting {
		t.Fatalf("expected seeded greeting, got %+v", m.messages)
	}
	if !strings.Contains(m.View(), "MindMate") {
		t.Fatalf("header missing from view")
	}
	if !strings.Contains(m.View(), "No activities logged yet today.") {
		t.Fatalf("empty-day summary missing from view")
	}
}

func TestReplyMsgUpdatesTranscript(t *testing.T) {
	m := newTestModel(t)

	transcript := append(m.messages,
		app.ChatMessage{Role: app.RoleUser, Content: "hello"},
		app.ChatMessage{Role: app.RoleAssistant, Content: "hi there"},
	)
	updated, _ := m.Update(replyMsg{transcript: transcript})
	m = updated.(*Model)

	if len(m.messages) != 3 {
		t.Fatalf("transcript not updated: %d messages", len(m.messages))
	}
	if m.sending {
		t.Fatalf("sending flag not cleared")
	}
	if !strings.Contains(m.renderMessages(), "hi there") {
		t.Fatalf("reply missing from rendered chat")
	}
}

func TestLogOverlayTogglesAndSaves(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyCtrlL}))
	m = updated.(*Model)
	if !m.logOverlay.visible {
		t.Fatalf("overlay not shown")
	}

	updated, _ = m.Update(keyRune('1'))
	m = updated.(*Model)
	updated, _ = m.Update(keyRune('3'))
	m = updated.(*Model)

	got := m.logOverlay.selectedTags()
	want := []string{app.TagVocabulary[0], app.TagVocabulary[2]}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("tag selection mismatch: got %v want %v", got, want)
	}

	// Toggling again deselects.
	updated, _ = m.Update(keyRune('3'))
	m = updated.(*Model)
	if got := m.logOverlay.selectedTags(); len(got) != 1 {
		t.Fatalf("tag not deselected: %v", got)
	}

	updated, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m = updated.(*Model)
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	updated, _ = m.Update(cmd())
	m = updated.(*Model)

	if m.logOverlay.visible {
		t.Fatalf("overlay still visible after save")
	}
	if m.summary == nil || m.summary.Count != 1 {
		t.Fatalf("summary not refreshed after save: %+v", m.summary)
	}
	if !strings.Contains(m.View(), app.TagVocabulary[0]) {
		t.Fatalf("saved tag missing from summary line")
	}
}

func TestActivitiesChangedMsgRefreshesSummary(t *testing.T) {
	m := newTestModel(t)

	if _, err := m.app.Activities.Add([]string{app.TagWalk}, ""); err != nil {
		t.Fatalf("add activity: %v", err)
	}
	updated, _ := m.Update(ActivitiesChangedMsg{})
	m = updated.(*Model)

	if m.summary == nil || m.summary.TagCounts[app.TagWalk] != 1 {
		t.Fatalf("summary not refreshed: %+v", m.summary)
	}
}
