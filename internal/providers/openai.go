package providers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"

	"aiprompt/internal/core"
)

const openAIBaseURL = "https://api.openai.com/v1/"

// chatClient talks to an OpenAI-compatible chat completions API.
type chatClient struct {
	id      core.ProviderID
	baseURL string
	headers map[string]string
	opts    Options
}

func (c *chatClient) ID() core.ProviderID { return c.id }

// bodyRecorder keeps the last response body the SDK read, so a reply it
// fails to decode can still be reported.
type bodyRecorder struct {
	status int
	body   []byte
}

func (r *bodyRecorder) middleware(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	resp, err := next(req)
	if err != nil || resp == nil || resp.Body == nil {
		return resp, err
	}
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	r.status, r.body = resp.StatusCode, b
	resp.Body = io.NopCloser(bytes.NewReader(b))
	return resp, nil
}

func (c *chatClient) client(apiKey string, rec *bodyRecorder) openai.Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(c.baseURL),
		option.WithHTTPClient(c.opts.httpClient()),
		option.WithMaxRetries(0),
		option.WithMiddleware(rec.middleware),
	}
	for k, v := range c.headers {
		reqOpts = append(reqOpts, option.WithHeader(k, v))
	}
	return openai.NewClient(reqOpts...)
}

func (c *chatClient) Complete(ctx context.Context, prompt, model, apiKey string) (string, error) {
	log := c.opts.logger()
	log.Debug("sending chat completion", "provider", c.id, "model", model, "endpoint", c.baseURL+"chat/completions")

	rec := &bodyRecorder{}
	client := c.client(apiKey, rec)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(Temperature),
	})
	if err != nil {
		return "", fromSDKError(err, rec)
	}
	if len(resp.Choices) == 0 {
		return "", shapeError(http.StatusOK, resp.RawJSON(), "no choices in response")
	}
	// The SDK decodes a missing content field and an explicit null alike.
	// Only null is an empty reply.
	content := gjson.Get(resp.RawJSON(), "choices.0.message.content")
	if !content.Exists() {
		return "", shapeError(http.StatusOK, resp.RawJSON(), "no message content in first choice")
	}
	log.Debug("chat completion received", "provider", c.id, "id", resp.ID)
	return resp.Choices[0].Message.Content, nil
}

// fromSDKError keeps the raw body the SDK read off a failed response. The
// message is the status line alone since the body is reported separately.
func fromSDKError(err error, rec *bodyRecorder) error {
	var sdkErr *openai.Error
	if errors.As(err, &sdkErr) {
		msg := fmt.Sprintf("%d %s", sdkErr.StatusCode, http.StatusText(sdkErr.StatusCode))
		if req := sdkErr.Request; req != nil {
			msg = fmt.Sprintf("%s %q: %s", req.Method, req.URL, msg)
		}
		return &APIError{StatusCode: sdkErr.StatusCode, Body: sdkErr.RawJSON(), Err: errors.New(msg)}
	}
	if rec != nil && rec.body != nil && rec.status >= 200 && rec.status < 300 {
		return &APIError{StatusCode: rec.status, Body: string(rec.body), Err: err}
	}
	return err
}

type openAI struct {
	*chatClient
}

func newOpenAI(opts Options) *openAI {
	return &openAI{&chatClient{
		id:      core.ProviderOpenAI,
		baseURL: opts.baseURL(openAIBaseURL),
		opts:    opts,
	}}
}

// Models returns the chat-capable ("gpt") models of the catalog, sorted by id.
func (o *openAI) Models(ctx context.Context, apiKey string) ([]core.Model, error) {
	rec := &bodyRecorder{}
	client := o.client(apiKey, rec)
	page, err := client.Models.List(ctx)
	if err != nil {
		return nil, fromSDKError(err, rec)
	}
	var out []core.Model
	for _, m := range page.Data {
		if strings.Contains(strings.ToLower(m.ID), "gpt") {
			out = append(out, core.Model{ID: m.ID})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
