// Package tui provides the terminal user interface for selam.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/ktesfay/selam/internal/errors"
)

// Color palette
var (
	colorBorder    = lipgloss.Color("#3b4261")
	colorPrimary   = lipgloss.Color("#7aa2f7")
	colorSecondary = lipgloss.Color("#9ece6a")
	colorAccent    = lipgloss.Color("#bb9af7")
	colorError     = lipgloss.Color("#f7768e")
	colorText      = lipgloss.Color("#c0caf5")
	colorTextDim   = lipgloss.Color("#565f89")
	colorTextMute  = lipgloss.Color("#3b4261")
)

var (
	// Header panel style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginBottom(1)

	// Title style for header
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle/model name style
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Hint text style
	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			Italic(true)

	// Messages area panel
	messagesAreaStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(1)

	// User message bubble
	userBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSecondary).
			Padding(0, 1).
			MarginLeft(4)

	// User label style
	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			MarginLeft(4)

	// Assistant message bubble
	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginRight(4)

	// Assistant label style
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Input area panel
	inputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginTop(1)

	// Input label style
	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Loading/spinner style
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Status bar styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	// Notice style (transient status notes)
	noticeStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Welcome styles
	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	welcomeIconStyle = lipgloss.NewStyle().
				Foreground(colorAccent)

	// Suggestion selector styles
	suggestionTitleStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true).
				MarginBottom(1)

	suggestionItemStyle = lipgloss.NewStyle().
				Foreground(colorText).
				PaddingLeft(2)

	suggestionSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	suggestionCursorStyle = lipgloss.NewStyle().
				Foreground(colorAccent)
)

// formatDiagnostic returns a dimmed diagnostic line for the last failed
// call. The transcript itself only ever shows the fallback turn; this is
// best-effort detail below the status bar.
func formatDiagnostic(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", err)))

	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)
	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  (HTTP %d)", status)))
	}
	if apierrors.IsNetworkError(err) {
		sb.WriteString(dimStyle.Render("  Check your internet connection"))
	}

	return sb.String()
}
