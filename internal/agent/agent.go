// File: internal/agent/agent.go
package agent

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/codeagent/internal/apperr"
	"github.com/xkilldash9x/codeagent/internal/config"
	"github.com/xkilldash9x/codeagent/internal/llmclient"
	"github.com/xkilldash9x/codeagent/internal/prompts"
)

// logPreviewRunes bounds how much of a user prompt is written to the log.
const logPreviewRunes = 100

// Allows for mocking in tests.
var uuidNewString = uuid.NewString

// Generator produces a response for an already prepared prompt. It is satisfied
// by *llmclient.Adapter.
type Generator interface {
	Generate(ctx context.Context, prepared string) (string, error)
}

// Agent turns a (task kind, prompt) pair into a single model response. It holds no
// per-request state; every Process call is independent.
type Agent struct {
	generator Generator
	logger    *zap.Logger
}

var _ Generator = (*llmclient.Adapter)(nil)

// New creates an Agent.
func New(generator Generator, logger *zap.Logger) *Agent {
	return &Agent{
		generator: generator,
		logger:    logger.Named("agent"),
	}
}

// Process validates the prompt, resolves the task kind, wraps the prompt in the
// kind's template and asks the generator for a response. Every failure comes back
// as an *apperr.Error; the generator is never called for invalid input.
func (a *Agent) Process(ctx context.Context, token, raw string) (string, error) {
	logger := a.logger.With(
		zap.String("request_id", uuidNewString()),
		zap.String("task", token),
	)

	if strings.TrimSpace(raw) == "" {
		logger.Warn("Rejected request without a prompt")
		return "", apperr.New(apperr.MissingPrompt, "No prompt provided. Use positional argument or --prompt option.")
	}

	kind, err := prompts.ParseTaskKind(token)
	if err != nil {
		logger.Warn("Rejected request with unknown task kind", zap.Error(err))
		return "", err
	}

	logger.Info("Processing request", zap.String("prompt", preview(raw)))

	prepared, err := prompts.Prepare(kind, raw)
	if err != nil {
		return "", err
	}

	response, err := a.generator.Generate(ctx, prepared)
	if err != nil {
		// Already-classified errors pass through unchanged.
		err = llmclient.Classify(err)
		logger.Error("Failed to process request", zap.Error(err), zap.Stringer("kind", apperr.KindOf(err)))
		return "", err
	}

	response = strings.TrimSpace(response)
	if response == "" {
		logger.Error("Failed to process request: empty response")
		return "", apperr.New(apperr.EmptyResponse, "Empty response from Gemini API")
	}

	logger.Info("Successfully generated response", zap.Int("response_chars", utf8.RuneCountInString(response)))
	return response, nil
}

// preview shortens s to logPreviewRunes runes for logging.
func preview(s string) string {
	if utf8.RuneCountInString(s) <= logPreviewRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:logPreviewRunes]) + "..."
}

// NewFromConfig wires an Agent to the configured Gemini endpoint.
func NewFromConfig(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (*Agent, error) {
	adapter, err := llmclient.NewAdapterFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize agent", zap.Error(err))
		return nil, err
	}
	logger.Debug("Agent initialized", zap.String("model", cfg.Model), zap.Int("max_tokens", cfg.MaxTokens))
	return New(adapter, logger), nil
}
