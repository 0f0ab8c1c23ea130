package domain

import "time"

// DefaultConversationTitle is the placeholder used before the first
// user message arrives.
const DefaultConversationTitle = "New Chat"

// conversationTitleLimit caps derived titles at 50 characters.
const conversationTitleLimit = 50

// Conversation is an ordered, append-only message history.
type Conversation struct {
	// ID is the unique identifier for the conversation.
	ID string

	// Title is derived from the first user message, or the default
	// placeholder before one exists.
	Title string

	// Messages is the ordered message sequence. Append-only.
	Messages []Message

	// CreatedAt is when the conversation was started.
	CreatedAt time.Time

	// UpdatedAt is bumped on every appended message.
	UpdatedAt time.Time
}

// Append adds a message and bumps UpdatedAt. The first user message
// also sets the conversation title.
func (c *Conversation) Append(msg Message) {
	if c.Title == DefaultConversationTitle && msg.Role == RoleUser && len(c.Messages) == 0 {
		c.Title = DeriveTitle(msg.Content)
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = msg.Timestamp
}

// DeriveTitle truncates a first user message to the title limit.
func DeriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) > conversationTitleLimit {
		return string(runes[:conversationTitleLimit])
	}
	return content
}
