// Package mcp provides an MCP (Model Context Protocol) server adapter
// for ragchat. It lets AI assistants ask questions against the local
// knowledge base and read the documents behind the citations.
package mcp

import "errors"

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("mcp: chat service is required")
