package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("chat.latency_min_ms", 500))

	assert.Equal(t, 500, store.GetInt("chat.latency_min_ms"))
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("history.backend", "sqlite"))

	assert.Equal(t, "sqlite", store.GetString("history.backend"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, "", store.GetString("chat.latency_min_ms"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("chat.failure_rate", 0.05))

	assert.Equal(t, 0.05, store.GetFloat("chat.failure_rate"))
	assert.Equal(t, float64(0), store.GetFloat("missing"))
}

func TestConfigStore_GetFloat_FromInt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[chat]\nfailure_rate = 1\n"), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, float64(1), store.GetFloat("chat.failure_rate"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("verbose", true))

	assert.True(t, store.GetBool("verbose"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("history.backend", "sqlite"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", reopened.GetString("history.backend"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[chat]\nlatency_min_ms = 1000\nlatency_max_ms = 2000\nfailure_rate = 0.01\n\n[history]\nbackend = \"memory\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 1000, store.GetInt("chat.latency_min_ms"))
	assert.Equal(t, 2000, store.GetInt("chat.latency_max_ms"))
	assert.Equal(t, 0.01, store.GetFloat("chat.failure_rate"))
	assert.Equal(t, "memory", store.GetString("history.backend"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
