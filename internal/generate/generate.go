// Package generate builds the prompts for the drafting passes and calls the
// chat model. The rest of the pipeline only ever sees the returned text; all
// model I/O terminates here.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/draftforge/draftforge/internal/cache"
	"github.com/draftforge/draftforge/internal/llm"
	"github.com/draftforge/draftforge/internal/profile"
)

// Context carries the client-side inputs for one engagement. All fields are
// plain strings; the HTTP layer enforces which ones are mandatory.
type Context struct {
	ClientName     string
	Industry       string
	Goals          string
	Modules        string
	RecipientRole  string
	ExecutionModel string
	Notes          string
}

// Lines renders the context as labeled lines, used both inside prompts and as
// the raw-context appendix of the export.
func (c Context) Lines() []string {
	return []string{
		"Client Name: " + c.ClientName,
		"Client Industry: " + c.Industry,
		"Goals/Challenges: " + c.Goals,
		"Proposed Modules: " + c.Modules,
		"Recipient Role: " + c.RecipientRole,
		"Execution Model: " + c.ExecutionModel,
		"Additional Notes: " + c.Notes,
	}
}

func (c Context) String() string { return strings.Join(c.Lines(), "\n") }

// ErrEmptyCompletion indicates the model returned no usable content.
var ErrEmptyCompletion = errors.New("empty completion")

// Generator calls the chat model with a single-retry policy and an optional
// disk cache keyed by model and prompt.
type Generator struct {
	Client      llm.Client
	Cache       *cache.Cache
	Model       string
	Temperature float32
	MaxTokens   int
}

// ValueProps produces the value-proposition draft for the engagement.
func (g *Generator) ValueProps(ctx context.Context, p profile.Profile, cc Context) (string, error) {
	return g.complete(ctx, valuePropsSystem, valuePropsPrompt(p, cc))
}

// Summary produces the executive summary draft from the profile, context and
// the value-proposition text.
func (g *Generator) Summary(ctx context.Context, p profile.Profile, cc Context, valueProps string) (string, error) {
	return g.complete(ctx, summarySystem, summaryPrompt(p, cc, valueProps))
}

// Refine rewrites the current draft according to the caller's instructions.
// Callers must reject empty instructions before reaching this point.
func (g *Generator) Refine(ctx context.Context, p profile.Profile, draft, instructions string) (string, error) {
	return g.complete(ctx, refineSystem, refinePrompt(p, draft, instructions))
}

func (g *Generator) complete(ctx context.Context, system, user string) (string, error) {
	if g.Client == nil || strings.TrimSpace(g.Model) == "" {
		return "", errors.New("generator not configured")
	}

	key := cache.Key(g.Model, system+"\n\n"+user)
	if g.Cache != nil {
		if text, ok := g.Cache.Get(ctx, key); ok && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	req := openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: g.Temperature,
		MaxTokens:   g.MaxTokens,
		N:           1,
	}
	resp, err := g.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		// One short fixed-backoff retry for transient failures; the context
		// deadline still bounds the second attempt.
		sleep(100)
		resp, err = g.Client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("generation call (after retry): %w", err)
		}
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	if g.Cache != nil {
		_ = g.Cache.Put(ctx, key, out)
	}
	return out, nil
}

// sleepFunc lets tests replace the retry backoff with a deterministic hook.
var sleepFunc func(ms int)

func sleep(ms int) {
	if sleepFunc != nil {
		sleepFunc(ms)
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
