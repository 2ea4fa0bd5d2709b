// Package openai is a minimal Azure OpenAI chat-completions client.
//
// It sends one system message and one user message and returns the text of
// the first choice. Sampling is controlled by [Options.Temperature] and the
// output length by [Options.MaxTokens].
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/imroc/req/v3"

	"github.com/matzehuels/gitroast/pkg/buildinfo"
	"github.com/matzehuels/gitroast/pkg/integrations"
	"github.com/matzehuels/gitroast/pkg/observability"
)

// Defaults for the generation request.
const (
	DefaultAPIVersion  = "2024-02-15-preview"
	DefaultTemperature = 0.9
	DefaultMaxTokens   = 1000
)

// ErrEmptyCompletion is returned when the service answers without choices.
var ErrEmptyCompletion = errors.New("completion has no choices")

// Options configures a [Client].
type Options struct {
	Endpoint   string // e.g. https://my-resource.openai.azure.com
	APIKey     string
	Deployment string
	APIVersion string // DefaultAPIVersion when empty

	// Temperature is sent as is; 0 is a valid, deterministic setting.
	Temperature float64
	// MaxTokens caps the completion length. DefaultMaxTokens when <= 0.
	MaxTokens int
}

// Client talks to one Azure OpenAI deployment.
type Client struct {
	http *req.Client
	opts Options
}

// NewClient validates opts and builds a client.
func NewClient(opts Options) (*Client, error) {
	switch {
	case opts.Endpoint == "":
		return nil, errors.New("openai: endpoint is required")
	case opts.APIKey == "":
		return nil, errors.New("openai: api key is required")
	case opts.Deployment == "":
		return nil, errors.New("openai: deployment is required")
	}
	if opts.APIVersion == "" {
		opts.APIVersion = DefaultAPIVersion
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	c := req.C().
		SetBaseURL(strings.TrimSuffix(opts.Endpoint, "/")).
		SetUserAgent(buildinfo.UserAgent()).
		SetCommonHeader("api-key", opts.APIKey).
		OnAfterResponse(reportResponse)

	return &Client{http: c, opts: opts}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the two messages and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	var (
		out    chatResponse
		apiErr errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deployment", c.opts.Deployment).
		SetQueryParam("api-version", c.opts.APIVersion).
		SetBody(&chatRequest{
			Messages: []message{
				{Role: "system", Content: system},
				{Role: "user", Content: user},
			},
			Temperature: c.opts.Temperature,
			MaxTokens:   c.opts.MaxTokens,
		}).
		SetSuccessResult(&out).
		SetErrorResult(&apiErr).
		Post("/openai/deployments/{deployment}/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion: %w: %v", integrations.ErrNetwork, err)
	}

	if !resp.IsSuccessState() {
		statusErr := integrations.CheckStatus(resp.StatusCode)
		if statusErr == nil {
			statusErr = fmt.Errorf("%w: status %d", integrations.ErrNetwork, resp.StatusCode)
		}
		if msg := apiErr.Error.Message; msg != "" {
			return "", fmt.Errorf("chat completion: %w: %s", statusErr, msg)
		}
		return "", fmt.Errorf("chat completion: %w", statusErr)
	}

	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return out.Choices[0].Message.Content, nil
}

// reportResponse forwards each completed request to the HTTP hooks.
func reportResponse(_ *req.Client, resp *req.Response) error {
	r := resp.Request
	if r == nil {
		return nil
	}
	var host, path string
	if r.URL != nil {
		host, path = r.URL.Host, r.URL.Path
	}

	hooks := observability.HTTP()
	if resp.Err != nil || resp.Response == nil {
		hooks.OnError(r.Context(), r.Method, host, path, resp.Err)
		return nil
	}
	hooks.OnResponse(r.Context(), r.Method, host, path, resp.StatusCode, resp.TotalTime())
	return nil
}
