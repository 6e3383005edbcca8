package recipechatbot_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	recipechatbot "github.com/JohnAutorola/recipe-chatbot"
	"github.com/JohnAutorola/recipe-chatbot/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	reply string
	err   error

	received []llm.Message
}

func (s *stubLLM) Chat(messages []llm.Message) (string, error) {
	s.received = messages
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConversationSystemInstructionIsAlwaysFirst(t *testing.T) {
	conv := recipechatbot.NewConversation("be helpful").
		WithUser("hi").
		WithAssistant("hello").
		WithUser("how do I boil an egg?")

	msgs := conv.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, "be helpful", msgs[0].Content)
	assert.Equal(t, llm.RoleUser, msgs[1].Role)
	assert.Equal(t, llm.RoleAssistant, msgs[2].Role)
	assert.Equal(t, llm.RoleUser, msgs[3].Role)
}

func TestConversationHasValueSemantics(t *testing.T) {
	base := recipechatbot.NewConversation("be helpful").WithUser("hi")

	first := base.WithAssistant("hello")
	second := base.WithAssistant("hey there")

	require.Len(t, base.Messages(), 2)
	assert.Equal(t, "hello", first.Messages()[2].Content)
	assert.Equal(t, "hey there", second.Messages()[2].Content)
}

func TestChatbotRespondAppendsAssistantReply(t *testing.T) {
	stub := &stubLLM{reply: "  Let's make soup together!  "}
	bot := recipechatbot.NewChatbot(stub, testLogger())

	conv := recipechatbot.NewChat().WithUser("what should I cook tonight?")

	next, err := bot.Respond(conv)
	require.NoError(t, err)

	// The model received the persona as the first message.
	require.NotEmpty(t, stub.received)
	assert.Equal(t, llm.RoleSystem, stub.received[0].Role)
	assert.Equal(t, recipechatbot.SystemPrompt, stub.received[0].Content)

	last, ok := next.Last()
	require.True(t, ok)
	assert.Equal(t, llm.RoleAssistant, last.Role)
	assert.Equal(t, "Let's make soup together!", last.Content)

	// The original conversation is untouched.
	origLast, ok := conv.Last()
	require.True(t, ok)
	assert.Equal(t, llm.RoleUser, origLast.Role)
}

func TestChatbotRespondPropagatesError(t *testing.T) {
	stub := &stubLLM{err: errors.New("provider down")}
	bot := recipechatbot.NewChatbot(stub, testLogger())

	_, err := bot.Respond(recipechatbot.NewChat().WithUser("hi"))
	require.Error(t, err)
}
