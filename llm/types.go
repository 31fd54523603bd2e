package llm

import (
	"context"
	"errors"
)

var ErrNoChoices = errors.New("no choices returned from OpenAI")

// ChatModel is anything that can continue a conversation.
type ChatModel interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

type ChatMessage struct {
	Role    string `json:"role"` // system, user or assistant
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

type ChatRequest struct {
	Model            string             `json:"model"`
	Messages         []ChatMessage      `json:"messages"`
	Temperature      float64            `json:"temperature"`
	TopP             float64            `json:"top_p"`
	N                int                `json:"n"`
	Stop             []string           `json:"stop,omitempty"`
	MaxTokens        int                `json:"max_tokens"`
	PresencePenalty  float64            `json:"presence_penalty"`
	FrequencyPenalty float64            `json:"frequency_penalty"`
	LogitBias        map[string]float64 `json:"logit_bias,omitempty"`
	User             string             `json:"user,omitempty"`
}

// NewChatRequest fills in the API's defaults.
func NewChatRequest(model string, messages []ChatMessage) ChatRequest {
	return ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 1,
		TopP:        1,
		N:           1,
		MaxTokens:   1024,
	}
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   Usage        `json:"usage"`
}

// Text returns the content of the first choice.
func (r ChatResponse) Text() (string, error) {
	if len(r.Choices) == 0 {
		return "", ErrNoChoices
	}
	return r.Choices[0].Message.Content, nil
}

// CompletionRequest.Prompt is a string, a list of strings, or token arrays.
type CompletionRequest struct {
	Model            string             `json:"model"`
	Prompt           any                `json:"prompt"`
	MaxTokens        int                `json:"max_tokens"`
	Temperature      float64            `json:"temperature"`
	TopP             float64            `json:"top_p"`
	N                int                `json:"n"`
	Logprobs         int                `json:"logprobs,omitempty"`
	Echo             bool               `json:"echo"`
	Stop             []string           `json:"stop,omitempty"`
	PresencePenalty  float64            `json:"presence_penalty"`
	FrequencyPenalty float64            `json:"frequency_penalty"`
	BestOf           int                `json:"best_of"`
	LogitBias        map[string]float64 `json:"logit_bias,omitempty"`
	User             string             `json:"user,omitempty"`
}

func NewCompletionRequest(model string, prompt any) CompletionRequest {
	return CompletionRequest{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   16,
		Temperature: 1,
		TopP:        1,
		N:           1,
		BestOf:      1,
	}
}

type CompletionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}

type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   Usage              `json:"usage"`
}
