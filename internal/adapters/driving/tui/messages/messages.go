// Package messages defines the custom tea.Msg types exchanged between
// the TUI views and the application model.
package messages

import (
	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// ViewType identifies which view is active.
type ViewType int

const (
	// ViewChat is the main chat transcript view.
	ViewChat ViewType = iota

	// ViewHistory is the conversation history view.
	ViewHistory

	// ViewDocPage is the citation document page viewer.
	ViewDocPage

	// ViewHelp is the keybinding help view.
	ViewHelp
)

// String returns a human-readable name for the view type.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewHistory:
		return "history"
	case ViewDocPage:
		return "document"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// TurnCompleted is sent when a chat turn finishes, successfully or not.
type TurnCompleted struct {
	// Conversation is the conversation the turn belongs to. Set even
	// when the turn failed, so a conversation created for a first
	// message is not lost.
	Conversation *domain.Conversation

	// Reply is the assistant message. Nil when the turn failed.
	Reply *domain.Message

	// Err is the turn error, if any.
	Err error
}

// ConversationsLoaded is sent when the conversation list has been loaded.
type ConversationsLoaded struct {
	Conversations []domain.Conversation
	Err           error
}

// ConversationSelected is sent when the user picks a conversation to resume.
type ConversationSelected struct {
	Conversation domain.Conversation
}

// ConversationDeleted is sent when a conversation has been deleted.
type ConversationDeleted struct {
	ID  string
	Err error
}

// NewConversation is sent when the user starts a fresh chat.
type NewConversation struct{}

// CitationOpened is sent when the user opens a highlighted citation.
type CitationOpened struct {
	Citation domain.Citation
}

// PageLoaded is sent when a document page has been loaded for viewing.
type PageLoaded struct {
	Title     string
	Page      int
	PageCount int
	Content   string
	Err       error
}

// ViewChanged is sent when the active view should change.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred is sent when an error should be surfaced to the user.
type ErrorOccurred struct {
	Err error
}

// Quit is sent when the application should exit.
type Quit struct{}
