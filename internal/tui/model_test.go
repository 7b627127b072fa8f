package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktesfay/selam/internal/api"
	"github.com/ktesfay/selam/internal/models"
)

// mockChatSession is a controllable ChatSessionInterface.
type mockChatSession struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (s *mockChatSession) SendMessage(prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.reply, s.err
}

// newTestModel builds a ready model backed by the given session.
func newTestModel(t *testing.T, session ChatSessionInterface) Model {
	t.Helper()

	client := &api.MockGeminiClient{Model: models.DefaultModel}
	m := NewChatModel(client, models.DefaultModel.Name)
	m.session = session

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	return m
}

// submit types text into the input and presses enter, returning the updated
// model and the command produced.
func submit(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()

	m.textarea.SetValue(text)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestSubmitAppendsUserTurnAndAwaitsReply(t *testing.T) {
	session := &mockChatSession{reply: "ደሓን እየ፡ የቐንየለይ! ንስኻኸ?"}
	m := newTestModel(t, session)

	m, cmd := submit(t, m, "ከመይ ኣለኻ?")

	if len(m.messages) != 1 {
		t.Fatalf("transcript has %d entries after submit, want 1", len(m.messages))
	}
	if m.messages[0].Role != models.RoleUser || m.messages[0].Content != "ከመይ ኣለኻ?" {
		t.Errorf("first entry = %+v, want the user turn", m.messages[0])
	}
	if !m.loading {
		t.Error("model should be awaiting a reply")
	}
	if m.textarea.Value() != "" {
		t.Error("input should be cleared after submit")
	}
	if cmd == nil {
		t.Fatal("submit produced no command")
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch, got %T", msg)
	}
	var reply replyMsg
	found := false
	for _, c := range batch {
		if r, ok := c().(replyMsg); ok {
			reply = r
			found = true
		}
	}
	if !found {
		t.Fatal("batch produced no replyMsg")
	}
	if reply.text != "ደሓን እየ፡ የቐንየለይ! ንስኻኸ?" {
		t.Errorf("reply text = %q", reply.text)
	}
	if session.lastPrompt != "ከመይ ኣለኻ?" {
		t.Errorf("session saw prompt %q", session.lastPrompt)
	}

	updated, _ := m.Update(reply)
	m = updated.(Model)

	if m.loading {
		t.Error("loading should be false after the reply lands")
	}
	if len(m.messages) != 2 {
		t.Fatalf("transcript has %d entries, want 2", len(m.messages))
	}
	if m.messages[1].Role != models.RoleModel || m.messages[1].Content != session.reply {
		t.Errorf("second entry = %+v, want the model turn", m.messages[1])
	}
}

func TestSubmitWhitespaceOnlyIsIgnored(t *testing.T) {
	session := &mockChatSession{reply: "reply"}
	m := newTestModel(t, session)

	m, _ = submit(t, m, "   \n\t ")

	if len(m.messages) != 0 {
		t.Errorf("transcript has %d entries, want 0", len(m.messages))
	}
	if m.loading {
		t.Error("model should not be loading")
	}
	if session.calls != 0 {
		t.Errorf("session called %d times, want 0", session.calls)
	}
}

func TestSubmitWhileLoadingIsIgnored(t *testing.T) {
	session := &mockChatSession{reply: "reply"}
	m := newTestModel(t, session)

	m, _ = submit(t, m, "first")
	if !m.loading {
		t.Fatal("model should be loading after first submit")
	}

	m, _ = submit(t, m, "second")

	if len(m.messages) != 1 {
		t.Errorf("transcript has %d entries, want 1", len(m.messages))
	}
	if session.lastPrompt == "second" {
		t.Error("second prompt must not reach the session while loading")
	}
}

func TestSendFailureAppendsFallbackReply(t *testing.T) {
	session := &mockChatSession{err: errors.New("service unavailable")}
	m := newTestModel(t, session)

	m, cmd := submit(t, m, "ከመይ ኣለኻ?")
	if cmd == nil {
		t.Fatal("submit produced no command")
	}

	batch := cmd().(tea.BatchMsg)
	var failed sendFailedMsg
	found := false
	for _, c := range batch {
		if f, ok := c().(sendFailedMsg); ok {
			failed = f
			found = true
		}
	}
	if !found {
		t.Fatal("batch produced no sendFailedMsg")
	}

	updated, _ := m.Update(failed)
	m = updated.(Model)

	if m.loading {
		t.Error("loading should be false after the failure lands")
	}
	if len(m.messages) != 2 {
		t.Fatalf("transcript has %d entries, want 2", len(m.messages))
	}
	if m.messages[1].Role != models.RoleModel {
		t.Errorf("fallback entry role = %q, want model", m.messages[1].Role)
	}
	if m.messages[1].Content != models.FallbackReply {
		t.Errorf("fallback content = %q, want the fixed apology", m.messages[1].Content)
	}
	if m.err == nil {
		t.Error("diagnostic error should be recorded")
	}

	// The next turn still works after a failure.
	session.err = nil
	session.reply = "ደሓን እየ"
	m, cmd = submit(t, m, "ደጊመ እፍትን")
	if cmd == nil || !m.loading {
		t.Error("submit after failure should start a new turn")
	}
}

func TestClearConversation(t *testing.T) {
	session := &mockChatSession{reply: "reply"}
	m := newTestModel(t, session)

	m, cmd := submit(t, m, "hello")
	batch := cmd().(tea.BatchMsg)
	for _, c := range batch {
		if r, ok := c().(replyMsg); ok {
			updated, _ := m.Update(r)
			m = updated.(Model)
		}
	}
	if len(m.messages) != 2 {
		t.Fatalf("transcript has %d entries before clear, want 2", len(m.messages))
	}
	oldSession := m.session

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(Model)

	if len(m.messages) != 0 {
		t.Errorf("transcript has %d entries after clear, want 0", len(m.messages))
	}
	if m.session == oldSession {
		t.Error("clear should swap in a fresh session handle")
	}
	if m.loading {
		t.Error("clear should reset the loading state")
	}
	if m.err != nil {
		t.Error("clear should drop the recorded error")
	}

	// Clearing an already empty transcript is a no-op that still succeeds.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(Model)
	if len(m.messages) != 0 {
		t.Errorf("transcript has %d entries after second clear, want 0", len(m.messages))
	}
}

func TestReplyAfterClearIsDiscarded(t *testing.T) {
	session := &mockChatSession{reply: "late reply"}
	m := newTestModel(t, session)

	m, cmd := submit(t, m, "hello")
	if !m.loading {
		t.Fatal("model should be loading")
	}

	// Clear while the call is still in flight.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(Model)

	batch := cmd().(tea.BatchMsg)
	for _, c := range batch {
		msg := c()
		switch msg.(type) {
		case replyMsg, sendFailedMsg:
			updated, _ := m.Update(msg)
			m = updated.(Model)
		}
	}

	if len(m.messages) != 0 {
		t.Errorf("stale reply landed in the fresh transcript: %d entries", len(m.messages))
	}
	if m.loading {
		t.Error("stale reply should not flip the loading state")
	}
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	session := &mockChatSession{err: errors.New("boom")}
	m := newTestModel(t, session)

	m, cmd := submit(t, m, "hello")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(Model)

	batch := cmd().(tea.BatchMsg)
	for _, c := range batch {
		if f, ok := c().(sendFailedMsg); ok {
			updated, _ := m.Update(f)
			m = updated.(Model)
		}
	}

	if len(m.messages) != 0 {
		t.Errorf("stale failure appended a fallback turn: %d entries", len(m.messages))
	}
	if m.err != nil {
		t.Error("stale failure should not surface a diagnostic")
	}
}

func TestSuggestionSelectionFillsInputOnly(t *testing.T) {
	session := &mockChatSession{reply: "reply"}
	m := newTestModel(t, session)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = updated.(Model)
	if !m.selectingPrompt {
		t.Fatal("ctrl+p should open the suggestion overlay")
	}

	// Move down once, then pick.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.selectingPrompt {
		t.Error("picking should close the overlay")
	}
	if got, want := m.textarea.Value(), models.SuggestedPrompts[1]; got != want {
		t.Errorf("input = %q, want %q", got, want)
	}
	if len(m.messages) != 0 {
		t.Error("picking a suggestion must not submit anything")
	}
	if m.loading {
		t.Error("picking a suggestion must not start a turn")
	}
	if session.calls != 0 {
		t.Errorf("session called %d times, want 0", session.calls)
	}
}

func TestSuggestionOverlayCancelAndWraparound(t *testing.T) {
	m := newTestModel(t, &mockChatSession{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = updated.(Model)

	// Up from the first entry wraps to the last.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.promptCursor != len(models.SuggestedPrompts)-1 {
		t.Errorf("cursor = %d, want %d", m.promptCursor, len(models.SuggestedPrompts)-1)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.selectingPrompt {
		t.Error("esc should close the overlay")
	}
	if m.textarea.Value() != "" {
		t.Error("cancel must not touch the input")
	}
}

func TestExitCommandsQuit(t *testing.T) {
	for _, input := range []string{"exit", "quit", "/exit", "/quit"} {
		m := newTestModel(t, &mockChatSession{})
		m, cmd := submit(t, m, input)

		if cmd == nil {
			t.Fatalf("%q produced no command", input)
		}
		if msg := cmd(); msg != tea.Quit() {
			t.Errorf("%q: got %T, want quit", input, msg)
		}
		if len(m.messages) != 0 {
			t.Errorf("%q should not land in the transcript", input)
		}
	}
}

func TestEscQuitsOnlyWhenIdle(t *testing.T) {
	m := newTestModel(t, &mockChatSession{reply: "reply"})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || cmd() != tea.Quit() {
		t.Error("esc should quit while idle")
	}

	m, _ = submit(t, m, "hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if !m.loading {
		t.Error("esc must not cancel an in-flight turn")
	}
}

func TestViewShowsFallbackAfterFailure(t *testing.T) {
	session := &mockChatSession{err: errors.New("boom")}
	m := newTestModel(t, session)

	m, cmd := submit(t, m, "ከመይ ኣለኻ?")
	batch := cmd().(tea.BatchMsg)
	for _, c := range batch {
		if f, ok := c().(sendFailedMsg); ok {
			updated, _ := m.Update(f)
			m = updated.(Model)
		}
	}

	view := m.View()
	if !strings.Contains(view, "ይቕሬታ") {
		t.Error("view should show the apology turn")
	}
}

func TestNewChatModelStartsEmpty(t *testing.T) {
	client := &api.MockGeminiClient{Model: models.DefaultModel}
	m := NewChatModel(client, models.DefaultModel.Name)

	if len(m.messages) != 0 {
		t.Errorf("new model has %d transcript entries, want 0", len(m.messages))
	}
	if m.session == nil {
		t.Error("new model should hold a session handle")
	}
	if m.loading {
		t.Error("new model should not be loading")
	}
}
