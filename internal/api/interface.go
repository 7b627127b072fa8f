package api

import "github.com/ktesfay/selam/internal/models"

// GeminiClientInterface defines the client operations the rest of the
// program depends on. It exists so the TUI and the one-shot command can be
// exercised against a mock.
type GeminiClientInterface interface {
	GenerateContent(prompt string, history []models.Message) (string, error)
	StartChat() *ChatSession
	GetModel() models.Model
	SetModel(model models.Model)
	SystemInstruction() string
	Close()
	IsClosed() bool
}

// Ensure GeminiClient implements GeminiClientInterface
var _ GeminiClientInterface = (*GeminiClient)(nil)
