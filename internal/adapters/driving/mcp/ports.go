package mcp

import (
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat answers questions with citations.
	Chat driving.ChatService

	// Document exposes the knowledge base.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	// Document is optional; document tools degrade gracefully
	return nil
}
