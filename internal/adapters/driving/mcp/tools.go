package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// ChatInput is the input schema for the chat tool.
type ChatInput struct {
	Query string `json:"query" jsonschema:"the question to answer from the knowledge base"`
}

// ChatOutput is the output schema for the chat tool.
type ChatOutput struct {
	Reply     string           `json:"reply"`
	Citations []CitationOutput `json:"citations,omitempty"`
}

// CitationOutput represents a single citation on a reply.
type CitationOutput struct {
	DocumentTitle string `json:"document_title"`
	PageNumber    int    `json:"page_number"`
	Snippet       string `json:"snippet"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single knowledge-base document.
type DocumentOutput struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

// GetDocumentContentInput is the input schema for the
// get_document_content tool.
type GetDocumentContentInput struct {
	Title string `json:"title" jsonschema:"the exact document title"`
	Page  int    `json:"page" jsonschema:"the page number, starting at 1"`
}

// GetDocumentContentOutput is the output schema for the
// get_document_content tool.
type GetDocumentContentOutput struct {
	Title   string `json:"title"`
	Page    int    `json:"page"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "chat",
		Description: "Ask a question and get a cited answer from the knowledge base",
	}, s.handleChat)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List all documents in the knowledge base",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document_content",
		Description: "Read one page of a knowledge-base document",
	}, s.handleGetDocumentContent)
}

// handleChat handles the chat tool invocation. Resolution is
// synchronous; the simulated turn latency only applies to the
// interactive chat surfaces.
func (s *Server) handleChat(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ChatInput,
) (*mcp.CallToolResult, ChatOutput, error) {
	if input.Query == "" {
		return nil, ChatOutput{}, errors.New("query is required")
	}

	answer := s.ports.Chat.Answer(input.Query)

	output := ChatOutput{Reply: answer.Text}
	for _, citation := range answer.Citations {
		output.Citations = append(output.Citations, CitationOutput{
			DocumentTitle: citation.DocumentTitle,
			PageNumber:    citation.PageNumber,
			Snippet:       citation.Snippet,
		})
	}

	return nil, output, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	if s.ports.Document == nil {
		return nil, ListDocumentsOutput{}, nil
	}

	docs, err := s.ports.Document.List(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentOutput{
			Title: docs[i].Title,
			Pages: len(docs[i].Pages),
		}
	}

	return nil, output, nil
}

// handleGetDocumentContent handles the get_document_content tool
// invocation.
func (s *Server) handleGetDocumentContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentContentInput,
) (*mcp.CallToolResult, GetDocumentContentOutput, error) {
	if s.ports.Document == nil {
		return nil, GetDocumentContentOutput{}, errors.New("document service not available")
	}

	content, err := s.ports.Document.GetContent(ctx, input.Title, input.Page)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, GetDocumentContentOutput{}, errors.New("document page not found")
		}
		return nil, GetDocumentContentOutput{}, err
	}

	return nil, GetDocumentContentOutput{
		Title:   input.Title,
		Page:    input.Page,
		Content: content,
	}, nil
}
