//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../../mocks/mock_intelligence.go -package=mocks
package ai

import (
	"context"
	"errors"

	"apptchat/models"

	"go.uber.org/zap"
)

var (
	// ErrNoCandidates is returned when the model answered without any candidate.
	ErrNoCandidates = errors.New("model returned no candidates")
	// ErrEmptyOutput is returned when the first candidate carries no text.
	ErrEmptyOutput = errors.New("model returned an empty output")
)

// IntentExtractor turns a free-text chat message into a structured intent.
// It never fails: anything that goes wrong yields the unknown intent.
type IntentExtractor interface {
	Extract(ctx context.Context, message string) models.Intent
}

// Generator sends a prompt to a text-generation model and returns its raw reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Parser reads a model reply into an intent.
type Parser interface {
	Parse(text string) (models.Intent, error)
}

// DefaultIntentExtractor prompts a Generator and decodes the reply with a Parser.
type DefaultIntentExtractor struct {
	generator Generator
	parser    Parser
	logger    *zap.Logger
}

func NewIntentExtractor(generator Generator, parser Parser, logger *zap.Logger) *DefaultIntentExtractor {
	return &DefaultIntentExtractor{
		generator: generator,
		parser:    parser,
		logger:    logger,
	}
}

// Extract makes exactly one model call per message; there is no retry and no cache.
func (e *DefaultIntentExtractor) Extract(ctx context.Context, message string) models.Intent {
	text, err := e.generator.Generate(ctx, BuildPrompt(message))
	if err != nil {
		e.logger.Warn("Error calling language model", zap.Error(err))
		return models.UnknownIntent()
	}

	intent, err := e.parser.Parse(text)
	if err != nil {
		e.logger.Warn("Error parsing JSON from generated text",
			zap.String("output", text),
			zap.Error(err),
		)
		return models.UnknownIntent()
	}

	e.logger.Debug("Extracted intent",
		zap.String("action", string(intent.Action)),
		zap.String("date", intent.Date),
		zap.String("time", intent.Time),
	)
	return intent
}
