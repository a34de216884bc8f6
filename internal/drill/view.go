package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"quizdrill/internal/ui/theme"
)

// View renders the model content for the given frame area.
func (m *Model) View(width, height int) string {
	if m.errMsg != "" {
		return renderError(width, m.errMsg)
	}

	switch m.phase {
	case phasePickSet:
		return renderMenu(width, "Which set do you want to practice?", m.setMenu.View())
	case phasePickFilter:
		return renderMenu(width, "Which questions are eligible?", m.filterMenu.View())
	case phasePickMethod:
		return renderMenu(width, "How should questions be picked?", m.methodMenu.View())
	case phasePickCount:
		return m.renderCount(width)
	case phaseQuestion:
		return m.renderQuestion(width)
	case phaseFeedback:
		return m.renderFeedback(width)
	case phaseRoundBreak:
		return m.renderRoundBreak(width)
	case phaseSummary:
		return m.renderSummary(width)
	}
	return ""
}

func renderMenu(width int, prompt, menu string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.
		Width(width).
		Align(lipgloss.Center).
		Render(prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))
	return b.String()
}

func (m *Model) renderCount(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.
		Width(width).
		Align(lipgloss.Center).
		Render("How many questions?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Leave empty for the whole set."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.countInput.View()))
	return b.String()
}

func (m *Model) renderQuestion(width int) string {
	if m.current == nil {
		return ""
	}

	var b strings.Builder

	// History line for the current question.
	info := fmt.Sprintf("prob %.3f", m.current.Question.Probability)
	if last := m.current.LastAnswer(); last != nil {
		info += fmt.Sprintf("   last answered %s", humanize.Time(last.Time))
	} else {
		info += "   never answered"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(m.current.Runner.Prompt()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + m.answerIn.View()))

	return b.String()
}

func (m *Model) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if m.result.Correct {
		b.WriteString(theme.Correct.
			Width(width).
			Align(lipgloss.Center).
			Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.
			Width(width).
			Align(lipgloss.Center).
			Render("Not quite"))
	}

	if m.result.Feedback != "" {
		b.WriteString("\n\n")
		fb := theme.Body.
			Width(min(width-8, 70)).
			Render(m.result.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.
		Width(width).
		Align(lipgloss.Center).
		Render("Press any key to continue..."))

	return b.String()
}

func (m *Model) renderRoundBreak(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Round %d complete", m.rounds.Round())))
	b.WriteString("\n\n")

	wrong := m.rounds.WrongCount()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d correct, %d to retry", m.rounds.RoundCorrect(), wrong)))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.
		Width(width).
		Align(lipgloss.Center).
		Render("Press any key for the next round..."))

	return b.String()
}

func (m *Model) renderSummary(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Drill complete"))
	b.WriteString("\n\n")

	pct := 0.0
	if m.totalAnswered > 0 {
		pct = 100 * float64(m.totalCorrect) / float64(m.totalAnswered)
	}
	rounds := 0
	if m.rounds != nil {
		rounds = m.rounds.Round()
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d answers, %d correct (%.0f%%) over %d rounds",
			m.totalAnswered, m.totalCorrect, pct, rounds)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("drill %s", m.drillID)))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.
		Width(width).
		Align(lipgloss.Center).
		Render("Press any key to exit..."))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to exit.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
