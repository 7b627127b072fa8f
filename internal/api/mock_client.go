package api

import "github.com/ktesfay/selam/internal/models"

// MockGeminiClient is a mock implementation of GeminiClientInterface for testing.
type MockGeminiClient struct {
	// Mock return values
	Model              models.Model
	Instruction        string
	GenerateContentVal string
	GenerateContentErr error
	IsClosedVal        bool
	ChatSession        *ChatSession

	// Call counters/recorders
	GenerateContentCalled int
	CloseCalled           bool
	LastPrompt            string
	LastHistory           []models.Message
}

// Ensure MockGeminiClient implements GeminiClientInterface
var _ GeminiClientInterface = (*MockGeminiClient)(nil)

func (m *MockGeminiClient) GenerateContent(prompt string, history []models.Message) (string, error) {
	m.GenerateContentCalled++
	m.LastPrompt = prompt
	m.LastHistory = copyHistory(history)
	return m.GenerateContentVal, m.GenerateContentErr
}

func (m *MockGeminiClient) StartChat() *ChatSession {
	if m.ChatSession != nil {
		return m.ChatSession
	}
	return &ChatSession{client: m}
}

func (m *MockGeminiClient) GetModel() models.Model {
	return m.Model
}

func (m *MockGeminiClient) SetModel(model models.Model) {
	m.Model = model
}

func (m *MockGeminiClient) SystemInstruction() string {
	return m.Instruction
}

func (m *MockGeminiClient) Close() {
	m.CloseCalled = true
}

func (m *MockGeminiClient) IsClosed() bool {
	return m.IsClosedVal
}
