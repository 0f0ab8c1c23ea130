package docviewer

import "errors"

// ErrNoDocumentService is returned when no document service was wired
// into the viewer.
var ErrNoDocumentService = errors.New("docviewer: document service not available")
