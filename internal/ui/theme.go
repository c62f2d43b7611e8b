package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Momentum theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSpark   = "✨"
	IconFlame   = "🔥"
	IconBolt    = "⚡"
	IconTarget  = "🎯"
	IconLoop    = "🔁"
	IconMuscle  = "💪"
	IconBook    = "📚"
	IconQuote   = "💬"
	IconTrophy  = "🏆"
	IconDone    = "✅"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconUndo    = "↩️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// CheckIcon renders a completion marker for list rows.
func CheckIcon(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
