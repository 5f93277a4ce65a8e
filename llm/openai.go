// Package llm adapts OpenAI-compatible chat APIs to the llms.Model interface
// the agents generate with. Any endpoint speaking the OpenAI wire format
// works: OpenAI itself, Groq, or a local server, selected via the base URL.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tmc/langchaingo/llms"
)

const defaultModel = openai.GPT4oMini

// OpenAI is an llms.Model backed by an OpenAI-compatible chat endpoint.
type OpenAI struct {
	client *openai.Client
	model  string
}

var _ llms.Model = (*OpenAI)(nil)

type config struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// OpenAIOption configures the adapter.
type OpenAIOption func(*config)

// WithBaseURL points the client at a non-default endpoint, e.g. Groq's
// https://api.groq.com/openai/v1.
func WithBaseURL(baseURL string) OpenAIOption {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithModel sets the model name requested from the endpoint.
func WithModel(model string) OpenAIOption {
	return func(c *config) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) OpenAIOption {
	return func(c *config) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewOpenAI creates an adapter. If apiKey is empty it falls back to the
// OPENAI_API_KEY environment variable.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	c := &config{model: defaultModel}
	for _, opt := range opts {
		opt(c)
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		clientConfig.BaseURL = c.baseURL
	}
	if c.httpClient != nil {
		clientConfig.HTTPClient = c.httpClient
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(clientConfig),
		model:  c.model,
	}, nil
}

// GenerateContent sends the messages as a chat completion request.
func (o *OpenAI) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{Model: o.model}
	for _, opt := range options {
		opt(&opts)
	}

	req := openai.ChatCompletionRequest{
		Model:       opts.Model,
		Messages:    toChatMessages(messages),
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	choices := make([]*llms.ContentChoice, len(resp.Choices))
	for i, choice := range resp.Choices {
		choices[i] = &llms.ContentChoice{
			Content:    choice.Message.Content,
			StopReason: string(choice.FinishReason),
		}
	}
	return &llms.ContentResponse{Choices: choices}, nil
}

// Call implements the legacy single-prompt interface.
func (o *OpenAI) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := o.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func toChatMessages(messages []llms.MessageContent) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		content := ""
		for _, part := range msg.Parts {
			if tp, ok := part.(llms.TextContent); ok {
				content += tp.Text
			}
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    toRole(msg.Role),
			Content: content,
		})
	}
	return out
}

func toRole(role llms.ChatMessageType) string {
	switch role {
	case llms.ChatMessageTypeSystem:
		return openai.ChatMessageRoleSystem
	case llms.ChatMessageTypeAI:
		return openai.ChatMessageRoleAssistant
	case llms.ChatMessageTypeTool, llms.ChatMessageTypeFunction:
		return openai.ChatMessageRoleTool
	default:
		return openai.ChatMessageRoleUser
	}
}
