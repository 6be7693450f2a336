package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor

	Header    lipgloss.Style
	Summary   lipgloss.Style
	Footer    lipgloss.Style
	InputBox  lipgloss.Style
	Overlay   lipgloss.Style
	OverlayTi lipgloss.Style

	RoleYou  lipgloss.Style
	RoleMate lipgloss.Style
	TagOn    lipgloss.Style
	TagOff   lipgloss.Style
	ErrText  lipgloss.Style
}

func NewTheme() Theme {
	t := Theme{
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		Accent:      lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"},
		Border:      lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"},
	}
	if os.Getenv("MINDMATE_NO_COLOR") == "1" {
		t.Accent = t.TextPrimary
	}

	t.Header = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Summary = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)
	t.OverlayTi = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	t.RoleYou = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.RoleMate = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.TagOn = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.TagOff = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.ErrText = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"})
	return t
}
