package api

import (
	"strings"
	"sync"

	apierrors "github.com/ktesfay/selam/internal/errors"
	"github.com/ktesfay/selam/internal/models"
)

// ChatSession maintains conversation context across messages. The handle is
// opaque to callers: its only contract is that a freshly created session has
// no memory of prior turns. It is never reset in place; callers replace it
// with a new one from StartChat.
type ChatSession struct {
	client  GeminiClientInterface
	mu      sync.RWMutex // Protects history
	history []models.Message
}

// copyHistory creates a copy of the history slice to avoid races.
func copyHistory(h []models.Message) []models.Message {
	if h == nil {
		return nil
	}
	result := make([]models.Message, len(h))
	copy(result, h)
	return result
}

// SendMessage sends prompt as the next turn of the conversation and returns
// the model's reply text. On success both turns are recorded in the handle's
// context; on failure the context is left untouched. An empty reply counts
// as a failure.
func (s *ChatSession) SendMessage(prompt string) (string, error) {
	// Read current state with read lock
	s.mu.RLock()
	hist := copyHistory(s.history)
	s.mu.RUnlock()

	// GenerateContent is thread-safe, no lock needed
	reply, err := s.client.GenerateContent(prompt, hist)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", apierrors.ErrEmptyReply
	}

	// Record both turns with write lock
	s.mu.Lock()
	s.history = append(hist,
		models.NewMessage(models.RoleUser, prompt),
		models.NewMessage(models.RoleModel, reply),
	)
	s.mu.Unlock()

	return reply, nil
}

// History returns a copy of the turns recorded so far.
func (s *ChatSession) History() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyHistory(s.history)
}

// Len returns the number of recorded turns.
func (s *ChatSession) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
