package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ragchat-cli/internal/logger"
)

// Snippet construction for citations. The ellipsis is always appended,
// even when the page content fits inside the snippet length - this
// mirrors how snippets have always rendered and keeps them uniform.
const (
	snippetLength   = 150
	snippetEllipsis = "..."
)

// maxFallbackCitations caps content-scan results per turn.
const maxFallbackCitations = 3

// topicEntry associates a recognised keyword or phrase with a document.
type topicEntry struct {
	keyword string
	docID   string
}

// topicTable maps keywords and phrases to knowledge-base documents.
// Grouped by topic cluster; the matcher consumes a copy sorted by
// keyword length descending so longer, more specific entries win.
var topicTable = []topicEntry{
	// UI & Styling
	{"tailwind css", "doc3"},
	{"tailwind", "doc3"},
	{"shadcn", "doc3"},
	{"mui", "doc3"},
	{"material ui", "doc3"},
	{"ant design", "doc3"},
	{"antd", "doc3"},
	{"bootstrap", "doc3"},
	{"styled-components", "doc3"},
	{"styled components", "doc3"},
	{"css modules", "doc3"},
	{"css", "doc3"},
	{"styling", "doc3"},
	{"design", "doc3"},
	// Routing
	{"next.js", "doc7"},
	{"next js", "doc7"},
	{"nextjs", "doc7"},
	{"react router", "doc7"},
	{"router", "doc7"},
	{"routing", "doc7"},
	{"route", "doc7"},
	// React & TypeScript
	{"react.js", "doc1"},
	{"react js", "doc1"},
	{"reactjs", "doc1"},
	{"react", "doc1"},
	{"javascript", "doc1"},
	{"component", "doc1"},
	{"hook", "doc1"},
	// Note: "ui", "web", "frontend", "js" omitted to avoid conflicts.
	{"typescript", "doc2"},
	{"typescript fundamentals", "doc2"},
	{"type", "doc2"},
	{"interface", "doc2"},
	// State Management
	{"redux", "doc4"},
	{"redux toolkit", "doc4"},
	{"zustand", "doc4"},
	{"mobx", "doc4"},
	{"recoil", "doc4"},
	{"state management", "doc4"},
	{"state", "doc4"},
	// Forms & Validation
	{"react hook form", "doc5"},
	{"hook form", "doc5"},
	{"formik", "doc5"},
	{"zod", "doc5"},
	{"yup", "doc5"},
	{"form", "doc5"},
	{"validation", "doc5"},
	// Data Fetching
	{"axios", "doc6"},
	{"fetch", "doc6"},
	{"react query", "doc6"},
	{"tanstack query", "doc6"},
	{"swr", "doc6"},
	{"api", "doc6"},
	{"data fetching", "doc6"},
	// Charts & Visualization
	{"chart", "doc8"},
	{"chart.js", "doc8"},
	{"recharts", "doc8"},
	{"d3", "doc8"},
	{"d3.js", "doc8"},
	{"visualization", "doc8"},
	{"graph", "doc8"},
	// Animations
	{"framer motion", "doc9"},
	{"framer", "doc9"},
	{"gsap", "doc9"},
	{"animation", "doc9"},
	{"animate", "doc9"},
	// Utilities
	{"lodash", "doc10"},
	{"moment", "doc10"},
	{"moment.js", "doc10"},
	{"dayjs", "doc10"},
	{"day.js", "doc10"},
	{"uuid", "doc10"},
	{"utility", "doc10"},
	// Testing
	{"jest", "doc11"},
	{"testing", "doc11"},
	{"test", "doc11"},
	{"react testing library", "doc11"},
	// RAG & Performance
	{"rag", "doc12"},
	{"retrieval", "doc12"},
	{"ai", "doc12"},
	{"machine learning", "doc12"},
	{"chatbot", "doc12"},
	{"performance", "doc13"},
	{"optimization", "doc13"},
	{"speed", "doc13"},
	{"fast", "doc13"},
	{"slow", "doc13"},
	{"bundle", "doc13"},
	{"memoization", "doc13"},
	{"lazy", "doc13"},
}

// sortedTopics holds the topic table sorted by keyword length
// descending. The stable sort keeps table order for equal lengths, so
// precedence stays deterministic.
var sortedTopics = sortTopicTable()

func sortTopicTable() []topicEntry {
	entries := make([]topicEntry, len(topicTable))
	copy(entries, topicTable)
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].keyword) > len(entries[j].keyword)
	})
	return entries
}

// Matcher resolves queries to citations against the document library.
// It tries the topic table first and falls back to scanning page
// contents when no table entry matches.
type Matcher struct {
	library driven.DocumentLibrary
}

// NewMatcher creates a matcher over the given document library.
func NewMatcher(library driven.DocumentLibrary) *Matcher {
	return &Matcher{library: library}
}

// Match returns the citations for a query. The topic table produces at
// most one citation and stops at the first matching entry; the content
// scan produces up to three, never two from the same document. An
// empty result means the reply should carry no citations at all.
func (m *Matcher) Match(ctx context.Context, query string, keywords []string) ([]domain.Citation, error) {
	docs, err := m.library.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	if citation := m.matchTopic(query, keywords, docs); citation != nil {
		logger.Debug("Topic match: doc=%q page=%d", citation.DocumentTitle, citation.PageNumber)
		return []domain.Citation{*citation}, nil
	}

	citations := m.matchContent(keywords, docs)
	logger.Debug("Content scan: %d citations", len(citations))
	return citations, nil
}

// matchTopic walks the sorted topic table and returns a citation for
// the first entry that matches. The search stops at the first hit even
// if a more specific entry appears later - the longest-first sort is
// the only guard against over-eager short-keyword matches.
func (m *Matcher) matchTopic(query string, keywords []string, docs []domain.Document) *domain.Citation {
	queryLower := strings.ToLower(query)
	trimmed := NormalizeQuery(query)
	normalizedQuery := whitespaceRe.ReplaceAllString(trimmed, "")

	byID := make(map[string]*domain.Document, len(docs))
	for i := range docs {
		byID[docs[i].ID] = &docs[i]
	}

	for _, entry := range sortedTopics {
		if !topicMatches(entry.keyword, queryLower, normalizedQuery, keywords) {
			continue
		}
		doc := byID[entry.docID]
		if doc == nil || len(doc.Pages) == 0 {
			continue
		}
		page := matchPage(doc, entry.keyword, keywords)
		citation := buildCitation(doc, page)
		return &citation
	}
	return nil
}

// topicMatches applies the matching rules for one table entry, in
// precedence order. The first satisfied rule wins.
func topicMatches(keyword, queryLower, normalizedQuery string, keywords []string) bool {
	normalizedKeyword := strings.ToLower(nonWordRe.ReplaceAllString(keyword, ""))
	multiWord := strings.Contains(keyword, " ")

	// 1. Exact equality between normalised query and keyword.
	if normalizedQuery == normalizedKeyword || strings.TrimSpace(queryLower) == keyword {
		return true
	}

	// 2. Multi-word keyword appears verbatim in the query.
	if multiWord && strings.Contains(queryLower, keyword) {
		return true
	}

	if len(keywords) > 0 {
		if multiWord {
			// 3. Every constituent word is present among the extracted
			// keywords, exactly or by fuzzy containment.
			allPresent := true
			for _, kw := range strings.Fields(keyword) {
				normalizedKw := strings.ToLower(nonWordRe.ReplaceAllString(kw, ""))
				if !fuzzyPresent(keywords, normalizedKw) {
					allPresent = false
					break
				}
			}
			if allPresent {
				return true
			}
		} else if fuzzyPresent(keywords, normalizedKeyword) {
			// 4. Single-word keyword matches an extracted keyword.
			return true
		}
	}

	// 5. Plain substring containment either direction, raw or
	// punctuation-normalised.
	if strings.Contains(queryLower, keyword) || strings.Contains(keyword, queryLower) {
		return true
	}
	if strings.Contains(normalizedQuery, normalizedKeyword) || strings.Contains(normalizedKeyword, normalizedQuery) {
		return true
	}

	return false
}

// fuzzyPresent reports whether the word equals, contains, or is
// contained by any of the extracted keywords.
func fuzzyPresent(keywords []string, word string) bool {
	for _, kw := range keywords {
		if kw == word || strings.Contains(kw, word) || strings.Contains(word, kw) {
			return true
		}
	}
	return false
}

// matchPage selects the first page whose content contains the matched
// keyword or any extracted keyword, defaulting to the first page.
func matchPage(doc *domain.Document, keyword string, keywords []string) *domain.Page {
	for i := range doc.Pages {
		contentLower := strings.ToLower(doc.Pages[i].Content)
		if strings.Contains(contentLower, keyword) {
			return &doc.Pages[i]
		}
		for _, kw := range keywords {
			if strings.Contains(contentLower, kw) {
				return &doc.Pages[i]
			}
		}
	}
	return &doc.Pages[0]
}

// pageHit is an intermediate content-scan result.
type pageHit struct {
	doc   *domain.Document
	page  *domain.Page
	score int
}

// matchContent scores every page by the number of extracted keywords
// appearing in its content and returns citations for the best pages.
// Runs only when the topic table produced nothing; returns nothing
// when no keywords were extracted so replies never cite unrelated
// documents.
func (m *Matcher) matchContent(keywords []string, docs []domain.Document) []domain.Citation {
	if len(keywords) == 0 {
		return nil
	}

	var hits []pageHit
	for i := range docs {
		for j := range docs[i].Pages {
			contentLower := strings.ToLower(docs[i].Pages[j].Content)
			score := 0
			for _, kw := range keywords {
				if strings.Contains(contentLower, kw) {
					score++
				}
			}
			if score > 0 {
				hits = append(hits, pageHit{doc: &docs[i], page: &docs[i].Pages[j], score: score})
			}
		}
	}

	if len(hits) == 0 {
		return nil
	}

	// Stable sort keeps library order for equal scores.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > maxFallbackCitations {
		hits = hits[:maxFallbackCitations]
	}

	var citations []domain.Citation
	usedDocs := make(map[string]bool)
	for _, hit := range hits {
		if usedDocs[hit.doc.ID] {
			continue
		}
		usedDocs[hit.doc.ID] = true
		citations = append(citations, buildCitation(hit.doc, hit.page))
	}
	return citations
}

// buildCitation constructs a citation for a document page.
func buildCitation(doc *domain.Document, page *domain.Page) domain.Citation {
	return domain.Citation{
		ID:            fmt.Sprintf("cite-%s-%d", doc.ID, page.Number),
		DocumentTitle: doc.Title,
		PageNumber:    page.Number,
		Snippet:       snippet(page.Content),
	}
}

// snippet returns the fixed-length prefix of page content used in
// citations. The ellipsis is appended unconditionally.
func snippet(content string) string {
	runes := []rune(content)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return string(runes) + snippetEllipsis
}
