// Copyright (c) ClaireAI. All rights reserved.

package openai

import (
	"context"
	"maps"

	"github.com/claireai/claire-go/claire"
)

// ChatLLM adapts a [Client] to [claire.LLM]. Each call issues exactly one
// request and routes the raw completion through its [claire.OutputParser].
type ChatLLM struct {
	client     *Client
	model      string
	genArgs    map[string]any
	parser     claire.OutputParser[*ChatCompletion]
	middleware []claire.Middleware
	handler    claire.GenerateFunc
}

// Verify interface compliance at compile time.
var _ claire.LLM = (*ChatLLM)(nil)

// NewChatLLM creates a [ChatLLM]. genArgs are copied and then sent verbatim
// with every request; they are not validated. The parser defaults to [OutputParser].
//
//	llm := openai.NewChatLLM(openai.New(apiKey), "gpt-4o-mini",
//	    map[string]any{"temperature": 0.2},
//	    openai.WithMiddleware(claire.LoggingMiddleware(slog.Default())),
//	)
func NewChatLLM(client *Client, model string, genArgs map[string]any, opts ...ChatLLMOption) *ChatLLM {
	l := &ChatLLM{
		client:  client,
		model:   model,
		genArgs: maps.Clone(genArgs),
		parser:  &OutputParser{},
	}
	for _, o := range opts {
		o(l)
	}
	l.handler = claire.Chain(l.generate, l.middleware...)
	return l
}

// NewChatLLMFromConfig creates a [ChatLLM] from generic adapter configs.
func NewChatLLMFromConfig(cfg claire.LLMConfigs[*Client], opts ...ChatLLMOption) *ChatLLM {
	return NewChatLLM(cfg.Client, cfg.ModelName, cfg.GenArgs, opts...)
}

// Model returns the configured model name.
func (l *ChatLLM) Model() string { return l.model }

// Generate sends a plain completion request and parses the result.
func (l *ChatLLM) Generate(ctx context.Context, messages []claire.Message, tools ...claire.Tool) (*claire.RawResponse, error) {
	return l.handler(ctx, &claire.Call{Messages: messages, Tools: tools})
}

// GenerateWithStructuredOutput sends a schema-constrained completion request
// and parses the result with its validated payload.
func (l *ChatLLM) GenerateWithStructuredOutput(ctx context.Context, messages []claire.Message, structure *claire.Structure, tools ...claire.Tool) (*claire.RawResponse, error) {
	return l.handler(ctx, &claire.Call{Messages: messages, Tools: tools, Structure: structure})
}

// generate is the base handler called by the middleware chain.
func (l *ChatLLM) generate(ctx context.Context, call *claire.Call) (*claire.RawResponse, error) {
	req := &ChatCompletionRequest{
		Model:    l.model,
		Messages: call.Messages,
		Tools:    call.Tools,
		GenArgs:  l.genArgs,
	}

	if call.Structure == nil {
		completion, err := l.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, err
		}
		return l.parser.Parse(completion)
	}

	completion, err := l.client.ParseChatCompletion(ctx, req, call.Structure)
	if err != nil {
		return nil, err
	}
	return l.parser.ParseStructured(completion, call.Structure)
}
