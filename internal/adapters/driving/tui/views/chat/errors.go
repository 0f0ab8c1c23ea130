package chat

import "errors"

// ErrNoConversationService is returned when a turn is attempted without
// a conversation service.
var ErrNoConversationService = errors.New("chat: conversation service not available")
