package providers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"aiprompt/internal/core"
)

// Options adjust how a provider talks to its API. The zero value talks to the
// real service with http.DefaultClient.
type Options struct {
	// BaseURL replaces the API root (the part before "/chat/completions",
	// "/messages" or "/models").
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return http.DefaultClient
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) baseURL(def string) string {
	u := o.BaseURL
	if u == "" {
		u = def
	}
	return strings.TrimRight(u, "/") + "/"
}

// NewProvider returns a concrete provider, or nil for an unknown id.
func NewProvider(id core.ProviderID, opts Options) Provider {
	switch id {
	case core.ProviderOpenAI:
		return newOpenAI(opts)
	case core.ProviderOpenRouter:
		return newOpenRouter(opts)
	case core.ProviderAnthropic:
		return newAnthropic(opts)
	default:
		return nil
	}
}
