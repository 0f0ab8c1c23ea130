package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_Append_SetsTitleFromFirstUserMessage(t *testing.T) {
	conv := Conversation{
		ID:        "conv-1",
		Title:     DefaultConversationTitle,
		CreatedAt: time.Now(),
	}

	msg := Message{
		ID:        "msg-1",
		Role:      RoleUser,
		Content:   "What is React?",
		Timestamp: time.Now(),
	}
	conv.Append(msg)

	assert.Equal(t, "What is React?", conv.Title)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, msg.Timestamp, conv.UpdatedAt)
}

func TestConversation_Append_TitleOnlyFromFirstMessage(t *testing.T) {
	conv := Conversation{ID: "conv-1", Title: DefaultConversationTitle}

	conv.Append(Message{Role: RoleUser, Content: "first question"})
	conv.Append(Message{Role: RoleAssistant, Content: "an answer"})
	conv.Append(Message{Role: RoleUser, Content: "second question"})

	assert.Equal(t, "first question", conv.Title)
	assert.Len(t, conv.Messages, 3)
}

func TestConversation_Append_BumpsUpdatedAt(t *testing.T) {
	conv := Conversation{ID: "conv-1", Title: DefaultConversationTitle}

	first := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	conv.Append(Message{Role: RoleUser, Content: "hello", Timestamp: first})
	assert.Equal(t, first, conv.UpdatedAt)

	conv.Append(Message{Role: RoleAssistant, Content: "hi", Timestamp: second})
	assert.Equal(t, second, conv.UpdatedAt)
}

func TestDeriveTitle_Truncation(t *testing.T) {
	long := strings.Repeat("a", 80)
	title := DeriveTitle(long)
	assert.Equal(t, strings.Repeat("a", 50), title)
}

func TestDeriveTitle_ShortUnchanged(t *testing.T) {
	assert.Equal(t, "short title", DeriveTitle("short title"))
}

func TestDeriveTitle_ExactLimit(t *testing.T) {
	exact := strings.Repeat("b", 50)
	assert.Equal(t, exact, DeriveTitle(exact))
}
