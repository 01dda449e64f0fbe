// File: internal/llmclient/generator.go
package llmclient

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/codeagent/internal/apperr"
)

// GenerationConfig controls the length and randomness of a response.
type GenerationConfig struct {
	MaxTokens   int
	Temperature float32
}

// Validate checks the generation limits.
func (c GenerationConfig) Validate() error {
	if c.MaxTokens <= 0 {
		return apperr.Newf(apperr.ConfigurationError, "max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.MaxTokens > math.MaxInt32 {
		return apperr.Newf(apperr.ConfigurationError, "max tokens must not exceed %d, got %d", math.MaxInt32, c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return apperr.Newf(apperr.ConfigurationError, "temperature must be between 0.0 and 2.0, got %.2f", c.Temperature)
	}
	return nil
}

// TextGenerator is a remote text generation endpoint. Implementations return the
// raw response text and the endpoint's own errors; classification happens in Adapter.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// Adapter issues exactly one call per prompt to a TextGenerator and turns the
// outcome into trimmed text or a classified error. It never retries.
type Adapter struct {
	endpoint TextGenerator
	config   GenerationConfig
	logger   *zap.Logger
}

// NewAdapter validates cfg and wraps endpoint.
func NewAdapter(endpoint TextGenerator, cfg GenerationConfig, logger *zap.Logger) (*Adapter, error) {
	if endpoint == nil {
		return nil, fmt.Errorf("text generator must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Adapter{
		endpoint: endpoint,
		config:   cfg,
		logger:   logger.Named("llm_adapter"),
	}, nil
}

// Config returns the generation settings used for every call.
func (a *Adapter) Config() GenerationConfig {
	return a.config
}

// Generate sends prepared to the endpoint. A blank response is an EmptyResponse
// error rather than a successful empty result.
func (a *Adapter) Generate(ctx context.Context, prepared string) (string, error) {
	if strings.TrimSpace(prepared) == "" {
		return "", apperr.New(apperr.MissingPrompt, "No prompt provided.")
	}

	text, err := a.endpoint.GenerateText(ctx, prepared, a.config)
	if err != nil {
		a.logger.Error("Generation request failed", zap.Error(err))
		return "", Classify(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		a.logger.Error("Generation returned an empty response")
		return "", apperr.New(apperr.EmptyResponse, "Empty response from Gemini API")
	}
	return text, nil
}
