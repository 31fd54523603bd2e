package llm

import (
	"bytes"
	"clementus360/ai-helper-web/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not set")

// APIError is a non-200 answer from the OpenAI API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API returned status code %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed if sent again.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// RetryPolicy bounds the exponential backoff around each API call.
type RetryPolicy struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy makes five attempts with waits capped at five seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxTries:        5,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Retry   RetryPolicy
	// Timeout applies to each attempt.
	Timeout time.Duration
}

// OpenAI calls the completions and chat completions endpoints.
type OpenAI struct {
	apiKey  string
	baseURL string
	retry   RetryPolicy
	client  *http.Client
}

func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Retry.MaxTries == 0 {
		cfg.Retry = DefaultRetryPolicy()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &OpenAI{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		retry:   cfg.Retry,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Chat sends a conversation and returns the model's reply.
func (o *OpenAI) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	var resp ChatResponse
	if err := o.post(ctx, "/chat/completions", req, &resp); err != nil {
		return ChatResponse{}, err
	}
	return resp, nil
}

// Complete returns completions for a prompt.
func (o *OpenAI) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	var resp CompletionResponse
	if err := o.post(ctx, "/completions", req, &resp); err != nil {
		return CompletionResponse{}, err
	}
	return resp, nil
}

func (o *OpenAI) post(ctx context.Context, path string, body, out any) error {
	if o.apiKey == "" {
		return ErrMissingAPIKey
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	raw, err := backoff.Retry(ctx, func() ([]byte, error) {
		return o.send(ctx, path, jsonData)
	},
		backoff.WithBackOff(&backoff.ExponentialBackOff{
			InitialInterval:     o.retry.InitialInterval,
			RandomizationFactor: backoff.DefaultRandomizationFactor,
			Multiplier:          2,
			MaxInterval:         o.retry.MaxInterval,
		}),
		backoff.WithMaxTries(o.retry.MaxTries),
		backoff.WithNotify(func(err error, wait time.Duration) {
			config.Logger.Warnf("OpenAI request to %s failed, retrying in %s: %v", path, wait, err)
		}),
	)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// send makes one attempt. Client errors other than rate limiting are
// permanent; everything else is retried.
func (o *OpenAI) send(ctx context.Context, path string, jsonData []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		if !apiErr.Retryable() {
			return nil, backoff.Permanent(apiErr)
		}
		return nil, apiErr
	}

	return raw, nil
}
