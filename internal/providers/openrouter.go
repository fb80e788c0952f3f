package providers

import (
	"context"
	"net/http"

	"aiprompt/internal/core"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1/"

// Attribution headers OpenRouter uses to identify the calling app.
const (
	openRouterReferer = "https://github.com/terminal-ai-prompt"
	openRouterTitle   = "Terminal AI Prompt"
)

type openRouter struct {
	*chatClient
}

func newOpenRouter(opts Options) *openRouter {
	return &openRouter{&chatClient{
		id:      core.ProviderOpenRouter,
		baseURL: opts.baseURL(openRouterBaseURL),
		headers: map[string]string{
			"HTTP-Referer": openRouterReferer,
			"X-Title":      openRouterTitle,
		},
		opts: opts,
	}}
}

type openRouterCatalog struct {
	Data []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

// Models returns every catalog entry, in catalog order, with its display name.
func (o *openRouter) Models(ctx context.Context, apiKey string) ([]core.Model, error) {
	url := o.baseURL + "models"
	o.opts.logger().Debug("listing models", "provider", o.id, "endpoint", url)

	var catalog openRouterCatalog
	status, raw, err := doJSON(ctx, o.opts.httpClient(), http.MethodGet, url,
		map[string]string{"Authorization": "Bearer " + apiKey}, nil, &catalog)
	if err != nil {
		return nil, err
	}
	if catalog.Data == nil {
		return nil, shapeError(status, raw, "no data in model catalog")
	}
	out := make([]core.Model, 0, len(catalog.Data))
	for _, m := range catalog.Data {
		out = append(out, core.Model{ID: m.ID, Name: m.Name})
	}
	return out, nil
}
