package history

import "errors"

// ErrNoConversationService is returned when the view has no
// conversation service to load from.
var ErrNoConversationService = errors.New("history: conversation service not available")
