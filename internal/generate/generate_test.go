package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/draftforge/draftforge/internal/cache"
	"github.com/draftforge/draftforge/internal/profile"
)

// fakeClient records requests and replays scripted responses in order.
type fakeClient struct {
	requests  []openai.ChatCompletionRequest
	responses []string
	errs      []error
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return openai.ChatCompletionResponse{}, f.errs[i]
	}
	var content string
	if i < len(f.responses) {
		content = f.responses[i]
	}
	if content == "" {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}, nil
}

func testProfile() profile.Profile {
	return profile.Profile{
		Name:            "Acme",
		Industry:        "Consulting",
		Services:        "Advisory",
		Differentiators: "Deep bench",
		Email:           "hello@acme.example",
		Phone:           "555-0100",
		Website:         "https://acme.example",
	}
}

func testContext() Context {
	return Context{
		ClientName:    "Globex",
		Industry:      "Manufacturing",
		Goals:         "Reduce cost",
		Modules:       "Ops review",
		RecipientRole: "CFO",
	}
}

func newGen(c *fakeClient) *Generator {
	return &Generator{Client: c, Model: "test-model", Temperature: 0.9, MaxTokens: 1700}
}

func TestSummary_RequestShape(t *testing.T) {
	fc := &fakeClient{responses: []string{"Introduction\ndraft text"}}
	g := newGen(fc)

	out, err := g.Summary(context.Background(), testProfile(), testContext(), "Case for Change\n- point")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if out != "Introduction\ndraft text" {
		t.Fatalf("out %q", out)
	}
	if len(fc.requests) != 1 {
		t.Fatalf("calls %d", len(fc.requests))
	}
	req := fc.requests[0]
	if req.Model != "test-model" || req.Temperature != 0.9 || req.MaxTokens != 1700 {
		t.Fatalf("request params %+v", req)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("messages %+v", req.Messages)
	}
	user := req.Messages[1].Content
	for _, want := range []string{
		"Why Acme",
		"Closing Call-to-Action",
		"Case for Change\n- point",
		"Recipient Role: CFO",
		"https://acme.example",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestValueProps_PromptNamesProvider(t *testing.T) {
	fc := &fakeClient{responses: []string{"Case for Change\n- x"}}
	g := newGen(fc)
	if _, err := g.ValueProps(context.Background(), testProfile(), testContext()); err != nil {
		t.Fatalf("ValueProps: %v", err)
	}
	user := fc.requests[0].Messages[1].Content
	if !strings.Contains(user, "Acme Proposed Solution") {
		t.Fatalf("prompt missing provider solution heading:\n%s", user)
	}
	if !strings.Contains(user, "Client Name: Globex") {
		t.Fatalf("prompt missing client context:\n%s", user)
	}
}

func TestComplete_RetriesOnce(t *testing.T) {
	var slept []int
	sleepFunc = func(ms int) { slept = append(slept, ms) }
	defer func() { sleepFunc = nil }()

	fc := &fakeClient{
		errs:      []error{errors.New("transient"), nil},
		responses: []string{"", "recovered text"},
	}
	g := newGen(fc)
	out, err := g.Refine(context.Background(), testProfile(), "draft", "shorter")
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if out != "recovered text" {
		t.Fatalf("out %q", out)
	}
	if len(fc.requests) != 2 || len(slept) != 1 {
		t.Fatalf("calls %d, sleeps %v", len(fc.requests), slept)
	}
}

func TestComplete_FailsAfterRetry(t *testing.T) {
	sleepFunc = func(int) {}
	defer func() { sleepFunc = nil }()

	boom := errors.New("backend down")
	fc := &fakeClient{errs: []error{boom, boom}}
	g := newGen(fc)
	_, err := g.ValueProps(context.Background(), testProfile(), testContext())
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("err %v", err)
	}
	if len(fc.requests) != 2 {
		t.Fatalf("calls %d", len(fc.requests))
	}
}

func TestComplete_EmptyCompletion(t *testing.T) {
	sleepFunc = func(int) {}
	defer func() { sleepFunc = nil }()

	fc := &fakeClient{responses: []string{"   \n  "}}
	g := newGen(fc)
	_, err := g.ValueProps(context.Background(), testProfile(), testContext())
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("err %v", err)
	}
}

func TestComplete_CacheHitSkipsModel(t *testing.T) {
	c := &cache.Cache{Dir: t.TempDir()}
	fc := &fakeClient{responses: []string{"fresh draft"}}
	g := newGen(fc)
	g.Cache = c

	p, cc := testProfile(), testContext()
	first, err := g.ValueProps(context.Background(), p, cc)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := g.ValueProps(context.Background(), p, cc)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Fatalf("cache replay diverged: %q vs %q", first, second)
	}
	if len(fc.requests) != 1 {
		t.Fatalf("model called %d times, want 1", len(fc.requests))
	}
}

func TestGenerator_Unconfigured(t *testing.T) {
	g := &Generator{}
	if _, err := g.ValueProps(context.Background(), testProfile(), testContext()); err == nil {
		t.Fatalf("unconfigured generator must error")
	}
}

func TestClosingCTA(t *testing.T) {
	got := ClosingCTA("Acme", "Globex")
	if !strings.HasPrefix(got, "Acme recommends") || !strings.Contains(got, "Globex achieves") {
		t.Fatalf("cta %q", got)
	}
	fallback := ClosingCTA("", "")
	if !strings.HasPrefix(fallback, "Provider recommends") || !strings.Contains(fallback, "the client achieves") {
		t.Fatalf("fallback cta %q", fallback)
	}
}
