package providers

import (
	"context"

	"aiprompt/internal/core"
)

// Provider sends a single prompt to one remote LLM service and lists its models.
type Provider interface {
	ID() core.ProviderID
	// Complete returns the generated text for prompt. HTTP failures are *APIError.
	Complete(ctx context.Context, prompt, model, apiKey string) (string, error)
	Models(ctx context.Context, apiKey string) ([]core.Model, error)
}

const (
	// Temperature is the sampling temperature sent with every request.
	Temperature = 0.7
	// AnthropicMaxTokens bounds the output; the Messages API requires a value.
	AnthropicMaxTokens = 4000
)
