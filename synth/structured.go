package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	recipechatbot "github.com/JohnAutorola/recipe-chatbot"
	"github.com/JohnAutorola/recipe-chatbot/internal"
	"github.com/JohnAutorola/recipe-chatbot/llm"
	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// schema is implemented by the envelope types a structured call can decode
// into. validate checks the shape of the decoded value; a validation failure
// feeds the same retry path as a network or decode failure.
type schema interface {
	validate() error
}

const (
	defaultMaxAttempts = 3
	defaultBackoff     = time.Second
)

// structuredCall sends the conversation to the model and decodes the reply
// into T. Provider errors, unparseable payloads, and schema mismatches are
// all one retryable class: the call is attempted up to maxAttempts times
// with a fixed backoff in between, and after the last attempt the final
// failure is returned to the caller unchanged.
func structuredCall[T schema](
	model llm.LLM,
	conv recipechatbot.Conversation,
	maxAttempts int,
	backoff time.Duration,
	logger *slog.Logger,
) (T, error) {
	var zero T

	if maxAttempts < 1 {
		maxAttempts = 1
	}

	messages := conv.Messages()

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		if last, ok := conv.Last(); ok {
			if tokens, err := internal.CountTokens(last.Content); err == nil {
				logger.Debug("Sending structured request", "promptTokens", tokens)
			}
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
		}

		raw, err := model.Chat(messages)
		if err != nil {
			lastErr = fmt.Errorf("failed to call LLM: %w", err)
			logger.Warn("Retry structured call", "attempt", attempt+1, "error", lastErr)
			continue
		}

		cleaned := llm.RemoveMarkdownFences(llm.RemoveThinkTags(raw))

		repaired, err := jsonrepair.RepairJSON(cleaned)
		if err != nil {
			lastErr = fmt.Errorf("failed to repair llm result: %w", err)
			logger.Warn("Retry structured call", "attempt", attempt+1, "error", lastErr)
			continue
		}

		var out T
		if err := json.Unmarshal([]byte(repaired), &out); err != nil {
			lastErr = fmt.Errorf("failed to parse llm result: %w", err)
			logger.Warn("Retry structured call", "attempt", attempt+1, "error", lastErr)
			continue
		}

		if err := out.validate(); err != nil {
			lastErr = fmt.Errorf("llm result failed validation: %w", err)
			logger.Warn("Retry structured call", "attempt", attempt+1, "error", lastErr)
			continue
		}

		return out, nil
	}

	return zero, lastErr
}
