package mcp

import (
	"context"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *sdk.ReadResourceRequest {
	return &sdk.ReadResourceRequest{
		Params: &sdk.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	server, err := NewServer(&Ports{
		Chat:     &mockChatService{},
		Document: &mockDocumentService{docs: testDocs()},
	})
	require.NoError(t, err)

	result, err := server.handleDocumentsResource(context.Background(), readRequest(uriScheme+"documents"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, "React Best Practices Guide")
	assert.Contains(t, result.Contents[0].Text, "TypeScript Fundamentals")
}

func TestServer_handlePageResource(t *testing.T) {
	server, err := NewServer(&Ports{
		Chat:     &mockChatService{},
		Document: &mockDocumentService{docs: testDocs()},
	})
	require.NoError(t, err)

	t.Run("returns page text", func(t *testing.T) {
		uri := uriScheme + "documents/TypeScript Fundamentals/pages/1"
		result, err := server.handlePageResource(context.Background(), readRequest(uri))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "TypeScript adds static typing.", result.Contents[0].Text)
	})

	t.Run("unknown page is not found", func(t *testing.T) {
		uri := uriScheme + "documents/TypeScript Fundamentals/pages/9"
		_, err := server.handlePageResource(context.Background(), readRequest(uri))

		require.Error(t, err)
	})

	t.Run("malformed uri is not found", func(t *testing.T) {
		_, err := server.handlePageResource(context.Background(), readRequest(uriScheme+"bogus"))

		require.Error(t, err)
	})
}

func TestExtractPageRef(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		wantTitle string
		wantPage  int
		wantOK    bool
	}{
		{
			name:      "valid",
			uri:       uriScheme + "documents/Routing Solutions/pages/3",
			wantTitle: "Routing Solutions",
			wantPage:  3,
			wantOK:    true,
		},
		{name: "wrong scheme", uri: "other://documents/X/pages/1", wantOK: false},
		{name: "missing pages segment", uri: uriScheme + "documents/X", wantOK: false},
		{name: "non-numeric page", uri: uriScheme + "documents/X/pages/abc", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, page, ok := extractPageRef(tt.uri)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTitle, title)
				assert.Equal(t, tt.wantPage, page)
			}
		})
	}
}
