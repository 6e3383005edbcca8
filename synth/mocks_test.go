package synth_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/JohnAutorola/recipe-chatbot/llm"
	"github.com/JohnAutorola/recipe-chatbot/synth"
)

type MockLLM struct {
	chatFn func(messages []llm.Message) (string, error)

	mu    sync.Mutex
	calls int
}

func (m *MockLLM) Chat(messages []llm.Message) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	return m.chatFn(messages)
}

func (m *MockLLM) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func testTuple(diet string) synth.DimensionTuple {
	return synth.DimensionTuple{
		DietaryNeedsOrRestrictions: diet,
		AvailableIngredientsFocus:  "general_pantry",
		CuisinePreference:          "any_cuisine",
		SkillLevelEffort:           "beginner_easy_low_effort",
		TimeAvailability:           "quick_under_30_mins",
		QueryStyleAndDetail:        "natural_question_moderate_detail",
		UserContextOrScenario:      "regular_meal",
		UserAbilityOrAccessibility: "no_specific_needs",
	}
}

func tuplesJSON(tuples ...synth.DimensionTuple) string {
	bs, _ := json.Marshal(map[string]any{"tuples": tuples})
	return string(bs)
}

func queriesJSON(prefix string, count int) string {
	queries := make([]string, count)
	for i := range queries {
		queries[i] = fmt.Sprintf("%s query %d", prefix, i+1)
	}
	bs, _ := json.Marshal(map[string]any{"queries": queries})
	return string(bs)
}

// scriptedChat routes each prompt to a canned response by the stage-specific
// wording of the prompt templates.
func scriptedChat(numTuples, perTuple, numAmbiguous, numAdversarial int) func(messages []llm.Message) (string, error) {
	return func(messages []llm.Message) (string, error) {
		prompt := messages[len(messages)-1].Content
		switch {
		case strings.Contains(prompt, "unique dimension tuples"):
			tuples := make([]synth.DimensionTuple, numTuples)
			for i := range tuples {
				tuples[i] = testTuple(fmt.Sprintf("diet-%d", i+1))
			}
			return tuplesJSON(tuples...), nil
		case strings.Contains(prompt, "based on this user and scenario"):
			return queriesJSON("regular", perTuple), nil
		case strings.Contains(prompt, "ambiguous or mixed-intent"):
			return queriesJSON("ambiguous", numAmbiguous), nil
		case strings.Contains(prompt, "adversarial or boundary-testing"):
			return queriesJSON("adversarial", numAdversarial), nil
		}
		return "", fmt.Errorf("unexpected prompt: %s", prompt)
	}
}
