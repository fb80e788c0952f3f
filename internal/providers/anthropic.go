package providers

import (
	"context"
	"net/http"

	"aiprompt/internal/core"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1/"
	anthropicVersion = "2023-06-01"
)

// anthropicModels is served locally; the Messages API has no catalog we query.
var anthropicModels = []string{
	"claude-3-opus-20240229",
	"claude-3-sonnet-20240229",
	"claude-3-haiku-20240307",
}

type anthropic struct {
	baseURL string
	opts    Options
}

func newAnthropic(opts Options) *anthropic {
	return &anthropic{baseURL: opts.baseURL(anthropicBaseURL), opts: opts}
}

func (a *anthropic) ID() core.ProviderID { return core.ProviderAnthropic }

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

type anthropicResponse struct {
	Content []struct {
		Type string  `json:"type"`
		Text *string `json:"text"`
	} `json:"content"`
}

func (a *anthropic) Complete(ctx context.Context, prompt, model, apiKey string) (string, error) {
	url := a.baseURL + "messages"
	log := a.opts.logger()
	log.Debug("sending message", "provider", core.ProviderAnthropic, "model", model, "endpoint", url)

	headers := map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": anthropicVersion,
	}
	req := anthropicRequest{
		Model:       model,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
		MaxTokens:   AnthropicMaxTokens,
		Temperature: Temperature,
	}
	var resp anthropicResponse
	status, raw, err := doJSON(ctx, a.opts.httpClient(), http.MethodPost, url, headers, req, &resp)
	if err != nil {
		return "", err
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == nil {
		return "", shapeError(status, raw, "no text content in message")
	}
	return *resp.Content[0].Text, nil
}

// Models returns the fixed list of known Claude models; apiKey is unused.
func (a *anthropic) Models(ctx context.Context, apiKey string) ([]core.Model, error) {
	out := make([]core.Model, 0, len(anthropicModels))
	for _, id := range anthropicModels {
		out = append(out, core.Model{ID: id})
	}
	return out, nil
}
