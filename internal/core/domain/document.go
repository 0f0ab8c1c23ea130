package domain

// Document represents a knowledge-base document.
// Documents are loaded once at startup and never mutated.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title, unique across the library.
	Title string

	// Pages is the ordered sequence of pages.
	Pages []Page
}

// Page is a single page of document content.
type Page struct {
	// Number is the page number, positive and unique within a document.
	Number int

	// Content is the full text content of the page.
	Content string
}

// PageByNumber returns the page with the given number, or nil if the
// document has no such page.
func (d *Document) PageByNumber(number int) *Page {
	for i := range d.Pages {
		if d.Pages[i].Number == number {
			return &d.Pages[i]
		}
	}
	return nil
}
