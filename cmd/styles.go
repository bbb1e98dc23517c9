package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aockit/pkg/aoc"
)

var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleCorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleWrong   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleWait    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleCreated = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleDim     = lipgloss.NewStyle().Faint(true)
)

// renderVerdict styles a submission outcome for the terminal. The site's
// own message is always included unmodified.
func renderVerdict(sub aoc.Submission) string {
	var label string
	switch sub.Verdict {
	case aoc.VerdictCorrect:
		label = styleCorrect.Render("★ correct")
	case aoc.VerdictIncorrect:
		label = styleWrong.Render("✗ incorrect")
	case aoc.VerdictTooRecent:
		label = styleWait.Render("⏳ too recent")
	case aoc.VerdictAlreadySolved:
		label = styleDone.Render("✔ already solved")
	default:
		label = styleDim.Render("? unknown response")
	}
	if sub.Message == "" {
		return label
	}
	return label + "\n" + styleDim.Render(sub.Message)
}
