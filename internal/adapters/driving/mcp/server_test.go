package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("creates server with valid ports", func(t *testing.T) {
		ports := &Ports{Chat: &mockChatService{}}

		server, err := NewServer(ports)

		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("requires chat service", func(t *testing.T) {
		ports := &Ports{}

		_, err := NewServer(ports)

		assert.ErrorIs(t, err, ErrMissingChatService)
	})

	t.Run("document service is optional", func(t *testing.T) {
		ports := &Ports{Chat: &mockChatService{}}

		_, err := NewServer(ports)

		require.NoError(t, err)
	})
}
