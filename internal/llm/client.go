// ABOUTME: OpenAI-backed completion client for persona chat turns
// ABOUTME: Single attempt per turn with an explicit timeout, no automatic retry
package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the default model for chat completions
const DefaultChatModel = "gpt-4o-mini"

// DefaultTimeout bounds one completion call when the config supplies nothing.
const DefaultTimeout = 30 * time.Second

// ErrNoChoices marks a well-formed API response that carried no completion.
var ErrNoChoices = errors.New("no completion choices returned")

// CompletionError wraps any failure of the remote text-generation call:
// network errors, error statuses, and malformed responses all land here.
// The turn that produced it must not be recorded in memory.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// ClientConfig holds configuration for the completion client
type ClientConfig struct {
	APIKey    string
	ChatModel string
	Timeout   time.Duration

	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

// Client sends assembled prompts to the OpenAI chat completion API. Calls are
// not idempotent: each one may bill quota and sampling may vary the text.
type Client struct {
	client    *openai.Client
	chatModel string
	timeout   time.Duration
}

// NewClient creates a completion client from the given configuration.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.ChatModel
	if model == "" {
		model = DefaultChatModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client:    openai.NewClientWithConfig(apiCfg),
		chatModel: model,
		timeout:   timeout,
	}, nil
}

// Complete sends the assembled prompt with the caller-selected sampling
// temperature and returns the generated text. Any failure comes back as a
// *CompletionError; the caller decides whether to surface it or fall back.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	// The request struct marshals temperature with omitempty, so a literal 0
	// would vanish from the wire and the service would substitute its own
	// default. The smallest positive float is the library's convention for
	// requesting deterministic sampling.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", &CompletionError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &CompletionError{Err: ErrNoChoices}
	}

	return resp.Choices[0].Message.Content, nil
}
