// Copyright (c) ClaireAI. All rights reserved.

// Command chat runs a multi-turn conversation with an agent loaded from a
// YAML file.
//
// It works with both OpenAI and Azure OpenAI; see .env.example.
//
// Usage:
//
//	cp .env.example .env   # then fill in your keys
//	go run . [agent.yml]
//
// Prefix a message with "json " to get a structured sentiment verdict instead
// of free text.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/claireai/claire-go/claire"
	"github.com/claireai/claire-go/openai"
)

// verdict is the structured output requested by the "json" prefix.
type verdict struct {
	Sentiment  string  `json:"sentiment" jsonschema:"required,enum=positive|neutral|negative"`
	Confidence float64 `json:"confidence" jsonschema:"required,minimum=0,maximum=1,description=Confidence between 0 and 1"`
	Summary    string  `json:"summary" jsonschema:"required,description=One sentence summary"`
}

func main() {
	// Load .env file if present (ignored if missing).
	_ = godotenv.Load()

	// Enable debug logging if requested
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	path := "agent.yml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := claire.LoadAgentConfigs(path)
	if err != nil {
		log.Fatalf("Failed to load agent: %v", err)
	}
	if cfg.LLM == nil {
		log.Fatalf("%s has no llm block", path)
	}

	// Build the model here rather than through the provider registry so the
	// sample can attach logging middleware.
	client, err := openai.NewClientFromSpec(*cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	fmt.Printf("Using %s model %s\n", cfg.LLM.Provider, cfg.LLM.Model)
	llm := openai.NewChatLLM(client, cfg.LLM.Model, cfg.LLM.GenArgs,
		openai.WithMiddleware(claire.LoggingMiddleware(slog.Default())),
	)

	agent, err := claire.AgentFromConfig(cfg, llm)
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}

	fmt.Printf("Chat with %s (type 'quit' to exit, 'json' prefix for structured output)\n\n", agent.Name())

	var history []claire.Message
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		ctx := context.Background()

		if strings.HasPrefix(input, "json ") {
			msgs := []claire.Message{claire.NewUserMessage(strings.TrimPrefix(input, "json "))}
			resp, err := claire.GenerateStructured[verdict](ctx, agent, msgs)
			if err != nil {
				log.Printf("Error: %v", err)
				continue
			}
			if v := resp.ParsedContent; v != nil {
				fmt.Printf("Assistant: %s (%.2f) %s\n\n", v.Sentiment, v.Confidence, v.Summary)
			} else {
				fmt.Printf("Assistant: no structured answer (%s)\n\n", resp.FinishReason)
			}
			continue
		}

		history = append(history, claire.NewUserMessage(input))
		resp, err := agent.Generate(ctx, history)
		if err != nil {
			log.Printf("Error: %v", err)
			history = history[:len(history)-1]
			continue
		}

		for _, tc := range resp.ToolCalls {
			fmt.Printf("  [tool call %s: %s(%s)]\n", tc.ID, tc.Name, tc.Arguments)
		}
		fmt.Printf("Assistant: %s\n", resp.Content)
		history = append(history, claire.NewAssistantMessage(resp.Content))

		if u := resp.CompletionUsage; u != nil && u.PromptTokens != nil && u.CompletionTokens != nil {
			fmt.Printf("  [tokens: %d in, %d out]\n", *u.PromptTokens, *u.CompletionTokens)
		}
		fmt.Println()
	}
}
