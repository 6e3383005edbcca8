package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
)

// OpenAICompat provides an implementation of the LLM interface for any
// OpenAI-compatible API service, such as OpenRouter or a LiteLLM proxy.
type OpenAICompat struct {
	baseURL string
	model   string
	params  Parameters

	client *goopenai.Client
	logger *slog.Logger
}

// NewOpenAICompat creates a new OpenAICompat instance pointing at the given
// host URL. The host should be the base URL of an OpenAI-compatible server.
func NewOpenAICompat(host, apiKey, model string, params Parameters, logger *slog.Logger) OpenAICompat {
	baseURL := strings.TrimSuffix(host, "/")

	config := goopenai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return OpenAICompat{
		baseURL: baseURL,
		model:   model,
		params:  params,
		client:  goopenai.NewClientWithConfig(config),
		logger:  logger.With(slog.String("module", "openaicompat")),
	}
}

// Chat sends the conversation to the OpenAI-compatible API and returns the assistant reply.
func (o OpenAICompat) Chat(messages []Message) (string, error) {
	req := chatCompletionRequest(o.model, messages, o.params)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices found")
	}

	// Some local servers wrap reasoning in think tags even in JSON mode.
	return RemoveThinkTags(resp.Choices[0].Message.Content), nil
}
