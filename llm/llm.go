package llm

// Role identifies the author of a chat message.
type Role string

// Roles understood by every provider in this package.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged entry in a conversation.
type Message struct {
	Role    Role
	Content string
}

// LLM defines the interface for language model operations.
// Implementations send the full ordered conversation to the provider and
// return the assistant's reply as plain text.
type LLM interface {
	Chat(messages []Message) (string, error)
}
