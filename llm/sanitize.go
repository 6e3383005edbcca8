package llm

import (
	"regexp"
	"strings"
)

var thinkTagRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// RemoveThinkTags strips <think> blocks, including the tags themselves, from
// a model response. Reasoning models emit these even when asked for JSON.
func RemoveThinkTags(input string) string {
	return thinkTagRe.ReplaceAllString(input, "")
}

// RemoveMarkdownFences drops any line that opens or closes a fenced code
// block, leaving the fenced content itself intact. Models frequently wrap
// JSON payloads in ```json fences despite instructions not to.
func RemoveMarkdownFences(input string) string {
	var kept []string
	for _, line := range strings.Split(input, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
