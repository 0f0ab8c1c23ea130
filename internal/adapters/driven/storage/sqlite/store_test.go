package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleConversation(id string, updatedAt time.Time) *domain.Conversation {
	return &domain.Conversation{
		ID:        id,
		Title:     "What is React?",
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
		Messages: []domain.Message{
			{
				ID:        id + "-m1",
				Role:      domain.RoleUser,
				Content:   "What is React?",
				Timestamp: updatedAt,
			},
			{
				ID:      id + "-m2",
				Role:    domain.RoleAssistant,
				Content: "React is a powerful library.",
				Citations: []domain.Citation{
					{
						ID:            "cite-doc1-1",
						DocumentTitle: "React Best Practices Guide",
						PageNumber:    1,
						Snippet:       "React is a JavaScript library...",
					},
				},
				Timestamp: updatedAt,
			},
		},
	}
}

func TestConversationStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	convs := store.ConversationStore()
	ctx := context.Background()

	original := sampleConversation("conv-1", time.Now())
	require.NoError(t, convs.Save(ctx, original))

	got, err := convs.Get(ctx, "conv-1")

	require.NoError(t, err)
	assert.Equal(t, "conv-1", got.ID)
	assert.Equal(t, "What is React?", got.Title)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, domain.RoleUser, got.Messages[0].Role)
	assert.Nil(t, got.Messages[0].Citations)
	require.Len(t, got.Messages[1].Citations, 1)
	assert.Equal(t, "cite-doc1-1", got.Messages[1].Citations[0].ID)
	assert.Equal(t, 1, got.Messages[1].Citations[0].PageNumber)
}

func TestConversationStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ConversationStore().Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversationStore_Save_Update(t *testing.T) {
	store := newTestStore(t)
	convs := store.ConversationStore()
	ctx := context.Background()

	conv := sampleConversation("conv-1", time.Now())
	require.NoError(t, convs.Save(ctx, conv))

	conv.Messages = append(conv.Messages, domain.Message{
		ID:        "conv-1-m3",
		Role:      domain.RoleUser,
		Content:   "tell me more",
		Timestamp: time.Now(),
	})
	require.NoError(t, convs.Save(ctx, conv))

	got, err := convs.Get(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "tell me more", got.Messages[2].Content)
}

func TestConversationStore_List_MostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	convs := store.ConversationStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, convs.Save(ctx, sampleConversation("conv-old", base.Add(-2*time.Hour))))
	require.NoError(t, convs.Save(ctx, sampleConversation("conv-new", base)))
	require.NoError(t, convs.Save(ctx, sampleConversation("conv-mid", base.Add(-time.Hour))))

	got, err := convs.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "conv-new", got[0].ID)
	assert.Equal(t, "conv-mid", got[1].ID)
	assert.Equal(t, "conv-old", got[2].ID)
	assert.Len(t, got[0].Messages, 2)
}

func TestConversationStore_Delete(t *testing.T) {
	store := newTestStore(t)
	convs := store.ConversationStore()
	ctx := context.Background()

	require.NoError(t, convs.Save(ctx, sampleConversation("conv-1", time.Now())))
	require.NoError(t, convs.Delete(ctx, "conv-1"))

	_, err := convs.Get(ctx, "conv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversationStore_Delete_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.ConversationStore().Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ConversationStore().Save(context.Background(), sampleConversation("conv-1", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ConversationStore().Get(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.Len(t, got.Messages, 2)
}
