package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Registry ids of the OpenAI models.
const (
	OpenAICollection   = "openai"
	OpenAICompletionID = "openai-completion"
	OpenAIChatID       = "openai-chat"
)

// RegisterOpenAI adds the completion and chat models backed by client.
// Parameters not given in the invocation keep the API defaults.
func RegisterOpenAI(reg *Registry, client *OpenAI) error {
	err := reg.Register(Model{
		ID:         OpenAICompletionID,
		Collection: OpenAICollection,
		Description: "Given a prompt, the model will return one or more predicted completions, " +
			"and can also return the probabilities of alternative tokens at each position.",
		Invoke: func(ctx context.Context, params json.RawMessage) (any, error) {
			req := NewCompletionRequest("", nil)
			if err := decodeParams(params, &req); err != nil {
				return nil, err
			}
			if req.Model == "" || req.Prompt == nil {
				return nil, fmt.Errorf("%w: model and prompt are required", ErrInvalidParams)
			}
			return client.Complete(ctx, req)
		},
	})
	if err != nil {
		return err
	}

	return reg.Register(Model{
		ID:          OpenAIChatID,
		Collection:  OpenAICollection,
		Description: "Given a list of messages describing a conversation, the model will return a response.",
		Invoke: func(ctx context.Context, params json.RawMessage) (any, error) {
			req := NewChatRequest("", nil)
			if err := decodeParams(params, &req); err != nil {
				return nil, err
			}
			if req.Model == "" || len(req.Messages) == 0 {
				return nil, fmt.Errorf("%w: model and messages are required", ErrInvalidParams)
			}
			return client.Chat(ctx, req)
		},
	})
}

func decodeParams(params json.RawMessage, into any) error {
	if len(params) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidParams)
	}
	if err := json.Unmarshal(params, into); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}
