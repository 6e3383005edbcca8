package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	recipechatbot "github.com/JohnAutorola/recipe-chatbot"
	"github.com/JohnAutorola/recipe-chatbot/llm"
)

// A small REPL over the chatbot wrapper, useful for eyeballing the assistant
// the synthetic queries are meant to test.
func main() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Println("Error: OPENAI_API_KEY environment variable not set.")
		return
	}

	model := os.Getenv("MODEL_NAME")
	if model == "" {
		model = "gpt-4o-mini"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	bot := recipechatbot.NewChatbot(llm.NewOpenAI(apiKey, model, llm.Parameters{}, logger), logger)
	conv := recipechatbot.NewChat()

	fmt.Println("Recipe chatbot. Type a question, or 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		next, err := bot.Respond(conv.WithUser(input))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		conv = next

		if reply, ok := conv.Last(); ok {
			fmt.Printf("\n%s\n\n", reply.Content)
		}
	}
}
