// File: internal/llmclient/classify.go
package llmclient

import (
	"context"
	"errors"
	"strings"

	"github.com/xkilldash9x/codeagent/internal/apperr"
)

// Classify maps an endpoint error onto the user-facing taxonomy. Upstream errors are
// opaque, so the message text is inspected case-insensitively; the checks run in a
// fixed priority order and the first match wins.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var classified *apperr.Error
	if errors.As(err, &classified) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.Timeout, "The request to the Gemini API timed out. Please try again.", err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit"):
		return apperr.Wrap(apperr.RateLimitExceeded, "API rate limit exceeded. Please try again later.", err)
	case strings.Contains(msg, "invalid") && strings.Contains(msg, "key"):
		return apperr.Wrap(apperr.InvalidAPIKey, "Invalid API key. Please check your GOOGLE_AI_API_KEY in .env file.", err)
	case strings.Contains(msg, "permission") || strings.Contains(msg, "unauthorized"):
		return apperr.Wrap(apperr.AccessDenied, "API access denied. Please check your API key permissions.", err)
	default:
		return apperr.Wrap(apperr.GenerationFailed, "Failed to generate response: "+err.Error(), err)
	}
}
