package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ktesfay/selam/internal/config"
	apierrors "github.com/ktesfay/selam/internal/errors"
	"github.com/ktesfay/selam/internal/render"
)

// Styles matching the chat TUI
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

// runQuery sends a single prompt as the only turn of a fresh conversation
// and prints the rendered reply.
func runQuery(prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	cfg, _ := config.LoadConfig()

	client, err := newClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	spin := newSpinner("ሰላም ይሓስብ ኣሎ")
	spin.start()

	session := client.StartChat()
	reply, err := session.SendMessage(prompt)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Generation failed"))
		return fmt.Errorf("generation failed: %w", err)
	}
	spin.stopWithSuccess("Done")

	// Copy to clipboard if enabled in config
	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(reply); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorErr).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(os.Stderr, warnMsg)
		} else {
			clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, clipMsg)
		}
	}

	// Output to file if specified
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(reply), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Reply saved to %s", outputFlag),
		)
		fmt.Fprintln(os.Stderr, successMsg)
		return nil
	}

	// Not a terminal: print the raw reply for pipelines
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(reply)
		return nil
	}

	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	label := assistantLabelStyle.Render("✦ Selam")
	fmt.Println(label)

	renderOpts := render.LoadOptionsFromConfigWithWidth(contentWidth)
	rendered, err := render.Markdown(reply, renderOpts)
	if err != nil {
		rendered = reply
	}
	// Trim trailing newlines from glamour
	rendered = strings.TrimRight(rendered, "\n")

	bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
	fmt.Println(bubble)

	return nil
}

// getTerminalWidth returns the terminal width or a default value.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// formatErrorMessage formats an error with context from structured errors.
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorErr)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	switch {
	case apierrors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check your internet connection and try again"))
	case apierrors.IsBlockedError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The service refused this prompt. Try rephrasing it"))
	}

	return sb.String()
}
