// Package ai talks to the OpenRouter chat-completions endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ykvlv/coach-bot/internal/prompt"
)

const (
	DefaultURL   = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel = "anthropic/claude-3-haiku"

	temperature = 0.7
	maxTokens   = 500
)

// ErrEmptyResponse is returned when the service answers without choices
// or with blank content.
var ErrEmptyResponse = errors.New("completion is empty")

// Completer generates text for a single prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RemoteServiceError is a non-2xx answer from the completion service.
type RemoteServiceError struct {
	StatusCode int
	Body       string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("openrouter error %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps network failures talking to the service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "openrouter transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	APIKey     string
	Model      string
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a Completer backed by OpenRouter. It never retries.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

// New validates opts and returns a Client.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openrouter api key is required")
	}
	c := &Client{
		apiKey:     opts.APIKey,
		model:      opts.Model,
		endpoint:   opts.Endpoint,
		timeout:    opts.Timeout,
		httpClient: opts.HTTPClient,
	}
	if strings.TrimSpace(c.model) == "" {
		c.model = DefaultModel
	}
	if strings.TrimSpace(c.endpoint) == "" {
		c.endpoint = DefaultURL
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt after the coach persona and returns the first choice.
func (c *Client) Complete(ctx context.Context, text string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.SystemPersona},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal openrouter request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build openrouter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RemoteServiceError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode openrouter response: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return parsed.Choices[0].Message.Content, nil
}
