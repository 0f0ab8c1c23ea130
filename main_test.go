package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ragchat-cli/internal/core/services"
)

// fakeConfigStore implements driven.ConfigStore over a plain map.
type fakeConfigStore struct {
	values map[string]any
}

var _ driven.ConfigStore = (*fakeConfigStore)(nil)

func (f *fakeConfigStore) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfigStore) GetString(key string) string {
	if s, ok := f.values[key].(string); ok {
		return s
	}
	return ""
}

func (f *fakeConfigStore) GetInt(key string) int {
	if n, ok := f.values[key].(int); ok {
		return n
	}
	return 0
}

func (f *fakeConfigStore) GetFloat(key string) float64 {
	if n, ok := f.values[key].(float64); ok {
		return n
	}
	return 0
}

func (f *fakeConfigStore) GetBool(key string) bool {
	if b, ok := f.values[key].(bool); ok {
		return b
	}
	return false
}

func (f *fakeConfigStore) Set(key string, value any) error {
	f.values[key] = value
	return nil
}

func (f *fakeConfigStore) Load() error { return nil }

func TestNewConversationStore_DefaultsToMemory(t *testing.T) {
	cfg := &fakeConfigStore{values: map[string]any{}}

	store, cleanup := newConversationStore(cfg)
	defer cleanup()

	require.NotNil(t, store)
	assert.IsType(t, &memory.ConversationStore{}, store)
}

func TestNewConversationStore_UnknownBackendFallsBackToMemory(t *testing.T) {
	cfg := &fakeConfigStore{values: map[string]any{
		"history.backend": "postgres",
	}}

	store, cleanup := newConversationStore(cfg)
	defer cleanup()

	assert.IsType(t, &memory.ConversationStore{}, store)
}

func TestNewConversationStore_SQLiteOptIn(t *testing.T) {
	cfg := &fakeConfigStore{values: map[string]any{
		"history.backend":  "sqlite",
		"history.data_dir": t.TempDir(),
	}}

	store, cleanup := newConversationStore(cfg)
	defer cleanup()

	require.NotNil(t, store)
	assert.IsNotType(t, &memory.ConversationStore{}, store)
}

func TestEngineOptions_Empty(t *testing.T) {
	cfg := &fakeConfigStore{values: map[string]any{}}

	assert.Empty(t, engineOptions(cfg))
}

func TestEngineOptions_FromConfig(t *testing.T) {
	cfg := &fakeConfigStore{values: map[string]any{
		"chat.latency_min_ms": 10,
		"chat.latency_max_ms": 20,
		"chat.failure_rate":   0.0,
	}}

	opts := engineOptions(cfg)

	assert.Len(t, opts, 2)

	// A zero failure rate and tight latency bounds make the engine
	// deterministic enough to exercise end to end.
	engine := services.NewEngine(memory.NewDefaultLibrary(), opts...)
	start := time.Now()
	msg, err := engine.SendMessage(t.Context(), "What is React?")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
