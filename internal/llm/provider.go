package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the single method the drafting pipeline needs from a chat model.
// Any OpenAI-compatible backend satisfies it, and tests substitute fakes so
// the core never performs network I/O.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}
