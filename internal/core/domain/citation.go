package domain

// Citation points to a specific document page that backs part of an
// assistant reply. Citations are created fresh per matched query and
// never mutated.
type Citation struct {
	// ID is derived from the cited document and page.
	ID string

	// DocumentTitle is the title of the cited document.
	DocumentTitle string

	// PageNumber is the cited page within the document.
	PageNumber int

	// Snippet is a fixed-length prefix of the page content, terminated
	// with an ellipsis marker. It is never fabricated text.
	Snippet string
}
