package driving

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// Answer is the outcome of the pure decision pipeline: the reply text
// and the citations backing it (empty when nothing matched or the
// query was conversational).
type Answer struct {
	// Text is the generated reply.
	Text string

	// Citations backs the reply with document references.
	Citations []domain.Citation
}

// ChatService produces assistant replies for user queries.
type ChatService interface {
	// Answer runs the pure decision pipeline (classifier, matchers,
	// response generator) without simulated latency or failure.
	// Deterministic given the query.
	Answer(query string) Answer

	// SendMessage runs a full orchestrated turn: simulated latency,
	// possible transient failure, then the decision pipeline. Returns
	// a fresh assistant message on success. A blank query is a no-op
	// returning (nil, nil). The only error kind is domain.ErrNetwork.
	SendMessage(ctx context.Context, query string) (*domain.Message, error)
}
