package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Facts is the already-aggregated material the narrator may phrase into
// prose. The narrator never feeds back into classification or ranking;
// it only decorates the report.
type Facts struct {
	Username      string
	TopInterests  []string
	Traits        []string
	TopSubreddits []string
	MostActive    string
}

// Narrator writes a short natural-language sketch of a persona.
type Narrator interface {
	Narrate(ctx context.Context, f Facts) (string, error)
}

// OpenAIClient implements Narrator using the Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: model}
}

func (o *OpenAIClient) Narrate(ctx context.Context, f Facts) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	b := &strings.Builder{}
	fmt.Fprintf(b, "Username: %s\n", f.Username)
	if len(f.TopInterests) > 0 {
		fmt.Fprintf(b, "Interests: %s\n", strings.Join(f.TopInterests, ", "))
	}
	if len(f.Traits) > 0 {
		fmt.Fprintf(b, "Traits: %s\n", strings.Join(f.Traits, ", "))
	}
	if len(f.TopSubreddits) > 0 {
		fmt.Fprintf(b, "Subreddits: %s\n", strings.Join(f.TopSubreddits, ", "))
	}
	if f.MostActive != "" {
		fmt.Fprintf(b, "Most active: %s\n", f.MostActive)
	}

	sys := "You write a short third-person sketch of a Reddit user from pre-computed facts. " +
		"Return 2-3 plain sentences, no lists, no links, no speculation beyond the facts given."
	user := fmt.Sprintf("Facts:\n%s\nTask: write the sketch.", b.String())

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sys},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		slog.Error("openai: narrate error", "err", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
