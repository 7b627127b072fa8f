package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ktesfay/selam/internal/api"
	"github.com/ktesfay/selam/internal/models"
	"github.com/ktesfay/selam/internal/render"
)

// Message types for the TUI. Both carry the sequence number of the
// conversation they belong to so a reply arriving after a clear is
// discarded instead of landing in the fresh transcript.
type (
	replyMsg struct {
		seq  int
		text string
	}
	sendFailedMsg struct {
		seq int
		err error
	}
)

// ChatSessionInterface defines the session operations needed by the TUI.
type ChatSessionInterface interface {
	SendMessage(prompt string) (string, error)
}

// Model represents the TUI state.
type Model struct {
	client    api.GeminiClientInterface
	session   ChatSessionInterface
	modelName string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	messages []models.Message
	loading  bool // awaiting a reply; serializes turns
	ready    bool
	err      error
	seq      int // bumped on clear; stale replies carry the old value

	// Suggestion selection state
	selectingPrompt bool
	promptCursor    int

	notice string // transient note (clipboard copy), cleared on next key

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model with a fresh session.
func NewChatModel(client api.GeminiClientInterface, modelName string) Model {
	ta := textarea.New()
	ta.Placeholder = "መልእኽትኻ ኣብዚ ጸሓፍ..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:    client,
		session:   client.StartChat(),
		modelName: modelName,
		textarea:  ta,
		spinner:   s,
		messages:  []models.Message{},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.selectingPrompt {
		return m.updateSuggestionSelection(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		m.notice = ""

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			// No mid-flight cancellation; a pending call resolves or fails
			// on its own.
			if !m.loading {
				return m, tea.Quit
			}

		case "ctrl+n":
			m.clearConversation()
			return m, nil

		case "ctrl+p":
			if !m.loading {
				m.selectingPrompt = true
				m.promptCursor = 0
				return m, nil
			}

		case "ctrl+y":
			m.copyLastReply()
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if !m.loading && input != "" {
				if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
					return m, tea.Quit
				}

				// Add user message
				m.messages = append(m.messages, models.NewMessage(models.RoleUser, input))
				m.updateViewport()
				m.viewport.GotoBottom()

				// Start awaiting the reply
				m.loading = true
				m.err = nil
				m.textarea.Reset()

				cmd = m.sendMessage(input, m.seq)

				return m, tea.Batch(cmd, m.spinner.Tick)
			}
		}

	case replyMsg:
		if msg.seq != m.seq {
			return m, nil // conversation was cleared mid-flight
		}
		m.loading = false
		m.messages = append(m.messages, models.NewMessage(models.RoleModel, msg.text))
		m.updateViewport()
		m.viewport.GotoBottom()

	case sendFailedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		// The conversation continues with the fixed apology turn; the raw
		// error only feeds the diagnostic footer.
		m.loading = false
		m.err = msg.err
		m.messages = append(m.messages, models.NewMessage(models.RoleModel, models.FallbackReply))
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only pass KeyMsg to the textarea to prevent escape sequence leaks
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// sendMessage creates a command that forwards prompt to the session.
// Failures never surface as errors here; they come back as sendFailedMsg
// and turn into the fallback transcript entry.
func (m Model) sendMessage(prompt string, seq int) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		reply, err := session.SendMessage(prompt)
		if err != nil {
			return sendFailedMsg{seq: seq, err: err}
		}
		return replyMsg{seq: seq, text: reply}
	}
}

// clearConversation empties the transcript and swaps in a fresh chat
// handle in the same step, so local and remote state reset together. Any
// in-flight reply is orphaned by the sequence bump.
func (m *Model) clearConversation() {
	m.messages = nil
	m.session = m.client.StartChat()
	m.seq++
	m.loading = false
	m.err = nil
	m.updateViewport()
}

// copyLastReply copies the most recent model turn to the clipboard.
func (m *Model) copyLastReply() {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Role == models.RoleModel {
			if err := clipboard.WriteAll(m.messages[i].Content); err != nil {
				m.notice = "clipboard unavailable"
			} else {
				m.notice = "✓ copied"
			}
			return
		}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.selectingPrompt {
		return m.renderSuggestionSelector()
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("ሰላም Selam"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.modelName),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Messages area
	var messagesContent string
	if len(m.messages) == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	// Input area
	var inputContent string
	if m.loading {
		inputContent = m.spinner.View() + loadingStyle.Render(" ሰላም ይሓስብ ኣሎ...")
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	// Diagnostic footer
	if m.err != nil {
		sections = append(sections, formatDiagnostic(m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the empty-transcript screen with the canned
// conversation starters.
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Align(lipgloss.Center).Render("✦")
	title := welcomeTitleStyle.Width(width).Align(lipgloss.Center).Render("ሰላም! እንታይ ክሕግዘካ እኽእል?")

	lines := []string{"", icon, "", title, ""}
	for _, s := range models.SuggestedPrompts {
		lines = append(lines, hintStyle.Width(width).Align(lipgloss.Center).Render(s))
	}
	lines = append(lines, "", hintStyle.Width(width).Align(lipgloss.Center).Render("Ctrl+P ንኣብነታት"))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts.
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+N", "New chat"},
		{"Ctrl+P", "Prompts"},
		{"Ctrl+Y", "Copy"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := strings.Join(items, "  │  ")
	if m.notice != "" {
		bar += "  │  " + noticeStyle.Render(m.notice)
	}
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages.
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.messages {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ " + msg.Role.DisplayName())
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ " + msg.Role.DisplayName())

			rendered, err := render.MarkdownWithWidth(msg.Content, bubbleWidth-4)
			if err != nil {
				rendered = msg.Content
			}
			// Trim trailing newlines from glamour
			rendered = strings.TrimRight(rendered, "\n")

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI.
func RunChat(client api.GeminiClientInterface, modelName string) error {
	m := NewChatModel(client, modelName)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
