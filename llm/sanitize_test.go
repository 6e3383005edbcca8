package llm_test

import (
	"testing"

	"github.com/JohnAutorola/recipe-chatbot/llm"
)

func TestRemoveThinkTags(t *testing.T) {
	input := "<think>planning\nthe answer</think>{\"queries\": []}"
	if got := llm.RemoveThinkTags(input); got != `{"queries": []}` {
		t.Errorf("Expected think block removed, got %q", got)
	}

	plain := `{"queries": []}`
	if got := llm.RemoveThinkTags(plain); got != plain {
		t.Errorf("Expected untouched output, got %q", got)
	}
}

func TestRemoveMarkdownFences(t *testing.T) {
	input := "```json\n{\"queries\": [\"a\"]}\n```"
	if got := llm.RemoveMarkdownFences(input); got != `{"queries": ["a"]}` {
		t.Errorf("Expected fences removed, got %q", got)
	}

	multi := "prefix\n```\nbody\n```\nsuffix"
	if got := llm.RemoveMarkdownFences(multi); got != "prefix\nbody\nsuffix" {
		t.Errorf("Expected only fence lines removed, got %q", got)
	}
}
