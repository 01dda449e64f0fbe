package llmclient

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/codeagent/internal/apperr"
	"github.com/xkilldash9x/codeagent/internal/config"
)

// NewClient creates the TextGenerator for the configured provider.
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		client, err := NewGeminiClient(ctx, cfg, logger)
		if err != nil {
			return nil, apperr.Wrap(apperr.ConfigurationError, err.Error(), err)
		}
		return client, nil
	default:
		return nil, apperr.Newf(apperr.ConfigurationError,
			"unknown or unsupported LLM provider configured: '%s'. Supported: [%s]", cfg.Provider, config.ProviderGemini)
	}
}

// ensure GeminiClient satisfies the interface.
var _ TextGenerator = (*GeminiClient)(nil)

// NewAdapterFromConfig builds the adapter used by the agent: the configured endpoint
// with the configured token limit and the fixed temperature.
func NewAdapterFromConfig(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (*Adapter, error) {
	endpoint, err := NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	adapter, err := NewAdapter(endpoint, GenerationConfig{MaxTokens: cfg.MaxTokens, Temperature: config.Temperature}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build generation adapter: %w", err)
	}
	return adapter, nil
}
