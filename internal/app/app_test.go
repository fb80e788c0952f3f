package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiprompt/internal/core"
	"aiprompt/internal/providers"
)

type stubProvider struct {
	id     core.ProviderID
	text   string
	models []core.Model
	err    error
}

func (s *stubProvider) ID() core.ProviderID { return s.id }

func (s *stubProvider) Complete(ctx context.Context, prompt, model, apiKey string) (string, error) {
	return s.text, s.err
}

func (s *stubProvider) Models(ctx context.Context, apiKey string) ([]core.Model, error) {
	return s.models, s.err
}

func TestQuerySuccess(t *testing.T) {
	var stderr bytes.Buffer
	text, ok := Query(context.Background(), &stubProvider{id: core.ProviderOpenAI, text: "X"}, "p", "m", "k", &stderr)
	assert.True(t, ok)
	assert.Equal(t, "X", text)
	assert.Empty(t, stderr.String())
}

func TestQueryTransportFailureIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	for _, id := range core.Providers() {
		var stderr bytes.Buffer
		p := providers.NewProvider(id, providers.Options{BaseURL: srv.URL})
		text, ok := Query(context.Background(), p, "p", "m", "k", &stderr)
		assert.False(t, ok, id)
		assert.Empty(t, text)
		assert.True(t, strings.HasPrefix(stderr.String(), "Error querying "+id.Title()+": "), stderr.String())
	}
}

func TestQueryReportsResponseBody(t *testing.T) {
	var stderr bytes.Buffer
	err := &providers.APIError{StatusCode: 429, Body: `{"error":"rate limited"}`}
	_, ok := Query(context.Background(), &stubProvider{id: core.ProviderAnthropic, err: err}, "p", "m", "k", &stderr)
	assert.False(t, ok)
	assert.Equal(t, "Error querying Anthropic: unexpected status 429 Too Many Requests\nResponse: {\"error\":\"rate limited\"}\n", stderr.String())
}

func TestQueryAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []any{map[string]any{"type": "text", "text": "X"}},
		})
	}))
	defer srv.Close()

	var stderr bytes.Buffer
	p := providers.NewProvider(core.ProviderAnthropic, providers.Options{BaseURL: srv.URL})
	text, ok := Query(context.Background(), p, "p", "claude-3-opus-20240229", "k", &stderr)
	assert.True(t, ok)
	assert.Equal(t, "X", text)
}

func TestQueryReportsSDKErrorBodyOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer srv.Close()

	var stderr bytes.Buffer
	p := providers.NewProvider(core.ProviderOpenAI, providers.Options{BaseURL: srv.URL})
	_, ok := Query(context.Background(), p, "p", "gpt-3.5-turbo", "k", &stderr)
	assert.False(t, ok)
	assert.Contains(t, stderr.String(), "Error querying OpenAI: ")
	assert.Contains(t, stderr.String(), "401 Unauthorized")
	assert.Equal(t, 1, strings.Count(stderr.String(), "Incorrect API key provided"))
	assert.Contains(t, stderr.String(), "\nResponse: {\"error\":{\"message\":\"Incorrect API key provided\"}}")
}

func TestQueryMissingContentIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant"}}]}`))
	}))
	defer srv.Close()

	var stderr bytes.Buffer
	p := providers.NewProvider(core.ProviderOpenRouter, providers.Options{BaseURL: srv.URL})
	text, ok := Query(context.Background(), p, "p", "m", "k", &stderr)
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Contains(t, stderr.String(), "Error querying OpenRouter: unexpected response: no message content in first choice\n")
	assert.Contains(t, stderr.String(), "Response: ")
}

func TestListModelsStaticProvider(t *testing.T) {
	for _, key := range []string{"", "sk-test", "anything"} {
		var stdout, stderr bytes.Buffer
		ListModels(context.Background(), providers.NewProvider(core.ProviderAnthropic, providers.Options{}), key, &stdout, &stderr)
		assert.Equal(t, "\nAvailable Anthropic models:\n"+
			"  - claude-3-opus-20240229\n"+
			"  - claude-3-sonnet-20240229\n"+
			"  - claude-3-haiku-20240307\n", stdout.String())
		assert.Empty(t, stderr.String())
	}
}

func TestListModelsOpenRouterFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"google/gemini-pro","name":"Gemini Pro"},{"id":"a/b","name":"AB"}]}`))
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	ListModels(context.Background(), providers.NewProvider(core.ProviderOpenRouter, providers.Options{BaseURL: srv.URL}), "sk-test", &stdout, &stderr)
	assert.Equal(t, "\nAvailable OpenRouter models:\n  - google/gemini-pro (Gemini Pro)\n  - a/b (AB)\n", stdout.String())
}

func TestListModelsOpenAIFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4","object":"model"},{"id":"gpt-3.5","object":"model"},{"id":"dall-e-3","object":"model"}]}`))
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	ListModels(context.Background(), providers.NewProvider(core.ProviderOpenAI, providers.Options{BaseURL: srv.URL}), "sk-test", &stdout, &stderr)
	assert.Equal(t, "\nAvailable OpenAI models:\n  - gpt-3.5\n  - gpt-4\n", stdout.String())
}

func TestListModelsFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := &providers.APIError{StatusCode: 401, Body: "denied"}
	ListModels(context.Background(), &stubProvider{id: core.ProviderOpenRouter, err: err}, "k", &stdout, &stderr)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error listing models: unexpected status 401 Unauthorized\nResponse: denied\n", stderr.String())

	stderr.Reset()
	ListModels(context.Background(), &stubProvider{id: core.ProviderOpenAI, err: errors.New("dial tcp: refused")}, "k", &stdout, &stderr)
	assert.Equal(t, "Error listing models: dial tcp: refused\n", stderr.String())
}

func TestResolvePromptPriority(t *testing.T) {
	file := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0o644))

	got, err := ResolvePrompt(PromptSource{Literal: "literal", File: file, Stdin: strings.NewReader("from stdin")})
	require.NoError(t, err)
	assert.Equal(t, "literal", got)

	got, err = ResolvePrompt(PromptSource{File: file, Stdin: strings.NewReader("from stdin")})
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	got, err = ResolvePrompt(PromptSource{Stdin: strings.NewReader("from stdin")})
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)
}

func TestResolvePromptTerminalStdinIgnored(t *testing.T) {
	_, err := ResolvePrompt(PromptSource{Stdin: strings.NewReader("typed"), StdinIsTerminal: true})
	assert.ErrorIs(t, err, ErrNoPrompt)

	_, err = ResolvePrompt(PromptSource{Stdin: strings.NewReader("")})
	assert.ErrorIs(t, err, ErrNoPrompt)

	_, err = ResolvePrompt(PromptSource{})
	assert.ErrorIs(t, err, ErrNoPrompt)
}

func TestResolvePromptMissingFile(t *testing.T) {
	_, err := ResolvePrompt(PromptSource{File: filepath.Join(t.TempDir(), "missing.txt"), Stdin: strings.NewReader("stdin")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrNoPrompt))
}
