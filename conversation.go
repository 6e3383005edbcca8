package recipechatbot

import (
	"github.com/JohnAutorola/recipe-chatbot/llm"
)

// Conversation is an ordered exchange of messages with a system instruction
// fixed at construction time. The system instruction is always the first
// entry of the rendered message list and cannot be replaced or displaced by
// later turns.
//
// Conversation has value semantics: WithUser and WithAssistant return an
// extended copy and leave the receiver untouched, so a Conversation can be
// shared freely once built.
type Conversation struct {
	system string
	turns  []llm.Message
}

// NewConversation creates a Conversation carrying the given system instruction.
func NewConversation(systemInstruction string) Conversation {
	return Conversation{system: systemInstruction}
}

// WithUser returns a copy of the conversation extended by one user message.
func (c Conversation) WithUser(content string) Conversation {
	return c.with(llm.Message{Role: llm.RoleUser, Content: content})
}

// WithAssistant returns a copy of the conversation extended by one assistant message.
func (c Conversation) WithAssistant(content string) Conversation {
	return c.with(llm.Message{Role: llm.RoleAssistant, Content: content})
}

func (c Conversation) with(msg llm.Message) Conversation {
	turns := make([]llm.Message, len(c.turns), len(c.turns)+1)
	copy(turns, c.turns)
	return Conversation{
		system: c.system,
		turns:  append(turns, msg),
	}
}

// Messages renders the conversation as the ordered message list sent to a
// provider, with the system instruction first.
func (c Conversation) Messages() []llm.Message {
	msgs := make([]llm.Message, 0, len(c.turns)+1)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: c.system})
	return append(msgs, c.turns...)
}

// Last returns the most recent turn, or false when the conversation holds
// nothing beyond the system instruction.
func (c Conversation) Last() (llm.Message, bool) {
	if len(c.turns) == 0 {
		return llm.Message{}, false
	}
	return c.turns[len(c.turns)-1], true
}
