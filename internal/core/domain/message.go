package domain

import "time"

// Role identifies the author of a chat message.
type Role string

// Message roles.
const (
	// RoleUser marks a message written by the user.
	RoleUser Role = "user"

	// RoleAssistant marks a message produced by the engine.
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single chat message. Immutable once created.
type Message struct {
	// ID is the unique identifier for the message.
	ID string

	// Role is the author of the message.
	Role Role

	// Content is the message text.
	Content string

	// Citations backs an assistant reply with document references.
	// Nil for user messages and for assistant replies without matches.
	Citations []Citation

	// Timestamp is when the message was created.
	Timestamp time.Time
}
