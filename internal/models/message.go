package models

import "github.com/google/uuid"

// Role identifies the author of a transcript turn. The values match the
// roles the generation API expects on the wire.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleModel:
		return "Selam"
	default:
		return string(r)
	}
}

// Message is a single turn in the transcript. Messages are immutable once
// created and ordered by insertion; only a full clear removes them.
type Message struct {
	ID      string
	Role    Role
	Content string
}

// NewMessage creates a message with a fresh unique ID.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
}
