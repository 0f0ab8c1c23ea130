package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

func testConversation(id string, updatedAt time.Time) *domain.Conversation {
	return &domain.Conversation{
		ID:        id,
		Title:     domain.DefaultConversationTitle,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestConversationStore_SaveAndGet(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	conv := testConversation("conv-1", time.Now())
	conv.Messages = []domain.Message{
		{ID: "msg-1", Role: domain.RoleUser, Content: "hello", Timestamp: time.Now()},
	}
	require.NoError(t, store.Save(ctx, conv))

	got, err := store.Get(ctx, "conv-1")

	require.NoError(t, err)
	assert.Equal(t, "conv-1", got.ID)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestConversationStore_Get_NotFound(t *testing.T) {
	store := NewConversationStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversationStore_Get_ReturnsCopy(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	conv := testConversation("conv-1", time.Now())
	conv.Messages = []domain.Message{
		{ID: "msg-1", Role: domain.RoleUser, Content: "hello", Timestamp: time.Now()},
	}
	require.NoError(t, store.Save(ctx, conv))

	got, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	got.Messages[0].Content = "mutated"

	again, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Messages[0].Content)
}

func TestConversationStore_List_MostRecentFirst(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.Save(ctx, testConversation("conv-old", base.Add(-2*time.Hour))))
	require.NoError(t, store.Save(ctx, testConversation("conv-new", base)))
	require.NoError(t, store.Save(ctx, testConversation("conv-mid", base.Add(-time.Hour))))

	convs, err := store.List(ctx)

	require.NoError(t, err)
	require.Len(t, convs, 3)
	assert.Equal(t, "conv-new", convs[0].ID)
	assert.Equal(t, "conv-mid", convs[1].ID)
	assert.Equal(t, "conv-old", convs[2].ID)
}

func TestConversationStore_Delete(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testConversation("conv-1", time.Now())))
	require.NoError(t, store.Delete(ctx, "conv-1"))

	_, err := store.Get(ctx, "conv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversationStore_Delete_NotFound(t *testing.T) {
	store := NewConversationStore()

	err := store.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
