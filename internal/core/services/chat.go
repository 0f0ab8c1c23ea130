package services

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ragchat-cli/internal/logger"
)

// Default turn simulation parameters.
const (
	defaultLatencyMin  = 1000 * time.Millisecond
	defaultLatencyMax  = 2000 * time.Millisecond
	defaultFailureRate = 0.01
)

// Engine runs chat turns: classify, extract, match, respond. The
// resolution itself is deterministic; SendMessage wraps it with the
// simulated latency and transient failures of a remote model call.
type Engine struct {
	classifier *Classifier
	extractor  *KeywordExtractor
	matcher    *Matcher
	responder  *Responder

	latencyMin  time.Duration
	latencyMax  time.Duration
	failureRate float64
	rng         *rand.Rand
}

var _ driving.ChatService = (*Engine)(nil)

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLatencyRange sets the simulated response latency bounds.
func WithLatencyRange(min, max time.Duration) EngineOption {
	return func(e *Engine) {
		e.latencyMin = min
		e.latencyMax = max
	}
}

// WithFailureRate sets the simulated transient failure probability,
// clamped to [0, 1].
func WithFailureRate(rate float64) EngineOption {
	return func(e *Engine) {
		if rate < 0 {
			rate = 0
		}
		if rate > 1 {
			rate = 1
		}
		e.failureRate = rate
	}
}

// WithRand sets the random source used for latency and failure
// simulation. Tests inject a seeded source for determinism.
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) {
		e.rng = rng
	}
}

// NewEngine creates a chat engine over the given document library.
func NewEngine(library driven.DocumentLibrary, opts ...EngineOption) *Engine {
	e := &Engine{
		classifier:  NewClassifier(),
		extractor:   NewKeywordExtractor(),
		matcher:     NewMatcher(library),
		responder:   NewResponder(),
		latencyMin:  defaultLatencyMin,
		latencyMax:  defaultLatencyMax,
		failureRate: defaultFailureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Answer resolves a query to reply text and citations. Conversational
// queries skip citation lookup entirely. The same query always
// produces the same answer.
func (e *Engine) Answer(query string) driving.Answer {
	logger.Section("Resolving reply")

	if e.classifier.IsConversational(query) {
		logger.Debug("Conversational query, skipping citation lookup")
		return driving.Answer{Text: e.responder.Respond(query, nil)}
	}

	keywords := e.extractor.Extract(query)
	logger.Debug("Extracted keywords: %v", keywords)

	citations, err := e.matcher.Match(context.Background(), query, keywords)
	if err != nil {
		logger.Warn("Citation lookup failed: %v", err)
		citations = nil
	}

	return driving.Answer{
		Text:      e.responder.Respond(query, citations),
		Citations: citations,
	}
}

// SendMessage runs one full chat turn for the query and returns the
// assistant message. Blank queries are ignored and return nil. The
// turn sleeps for the simulated latency and may fail with
// domain.ErrNetwork at the configured rate; a failed turn produces no
// message and the caller may simply retry.
func (e *Engine) SendMessage(ctx context.Context, query string) (*domain.Message, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	latency := e.latencyMin
	if e.latencyMax > e.latencyMin {
		latency += time.Duration(e.rng.Int63n(int64(e.latencyMax - e.latencyMin)))
	}
	logger.Debug("Simulated latency: %v", latency)

	select {
	case <-time.After(latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if e.failureRate > 0 && e.rng.Float64() < e.failureRate {
		logger.Debug("Simulated transient failure")
		return nil, domain.ErrNetwork
	}

	answer := e.Answer(query)

	msg := &domain.Message{
		ID:        "msg-" + uuid.NewString(),
		Role:      domain.RoleAssistant,
		Content:   answer.Text,
		Citations: answer.Citations,
		Timestamp: time.Now(),
	}
	return msg, nil
}
