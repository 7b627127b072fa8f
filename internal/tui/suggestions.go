package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ktesfay/selam/internal/models"
)

// updateSuggestionSelection handles updates while the suggestion overlay is
// open. Picking an entry only fills the input box; nothing is submitted and
// the transcript is untouched.
func (m Model) updateSuggestionSelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.selectingPrompt = false
			m.promptCursor = 0

		case "up", "k":
			m.promptCursor--
			if m.promptCursor < 0 {
				m.promptCursor = len(models.SuggestedPrompts) - 1
			}

		case "down", "j":
			m.promptCursor++
			if m.promptCursor >= len(models.SuggestedPrompts) {
				m.promptCursor = 0
			}

		case "enter":
			if m.promptCursor >= 0 && m.promptCursor < len(models.SuggestedPrompts) {
				m.textarea.SetValue(models.SuggestedPrompts[m.promptCursor])
			}
			m.selectingPrompt = false
			m.promptCursor = 0
		}
	}

	return m, nil
}

// renderSuggestionSelector renders the suggestion overlay.
func (m Model) renderSuggestionSelector() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	var content strings.Builder

	content.WriteString(suggestionTitleStyle.Render("ኣብነታት ሕቶ"))
	content.WriteString("\n\n")

	for i, prompt := range models.SuggestedPrompts {
		cursor := "  "
		style := suggestionItemStyle
		if i == m.promptCursor {
			cursor = suggestionCursorStyle.Render("▸ ")
			style = suggestionSelectedStyle
		}
		content.WriteString(cursor + style.Render(prompt))
		content.WriteString("\n")
	}

	content.WriteString("\n")

	shortcuts := []string{
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
		statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Pick"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Cancel"),
	}
	content.WriteString(strings.Join(shortcuts, "  │  "))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(content.String())
}
