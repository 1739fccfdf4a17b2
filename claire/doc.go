// Copyright (c) ClaireAI. All rights reserved.

// Package claire provides the core types and abstractions for building agents
// on top of LLM chat-completion APIs. It normalizes vendor-specific completions
// into a single [Response] shape so callers never depend on a backend's wire
// format.
//
// # Quick Start
//
// Create an [LLM] (e.g., from the openai package) and call it with messages:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//	llm := openai.NewChatLLM(client, "gpt-4o", map[string]any{"temperature": 0.2})
//
//	resp, err := llm.Generate(ctx, []claire.Message{
//	    claire.NewSystemMessage("You are helpful."),
//	    claire.NewUserMessage("Hello!"),
//	})
//
// # Architecture
//
//   - [Message]: one conversation turn; text or an ordered list of [Part]s.
//   - [Response]: the vendor-neutral completion result, generic over the
//     structured-output type.
//   - [OutputParser]: maps a backend's raw completion into a [Response].
//   - [LLM]: the adapter capability implemented by provider packages.
//   - [Agent]: a configured entity bundling an [LLM] with tools and prompts.
//
// # Structured Output
//
// Use [GenerateStructured] to constrain a completion to a Go type:
//
//	type Forecast struct {
//	    City string  `json:"city" jsonschema:"required"`
//	    Temp float64 `json:"temp" jsonschema:"required"`
//	}
//
//	resp, err := claire.GenerateStructured[Forecast](ctx, llm, msgs)
//	if err == nil && resp.ParsedContent != nil {
//	    fmt.Println(resp.ParsedContent.City)
//	}
package claire
