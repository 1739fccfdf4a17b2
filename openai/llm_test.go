// Copyright (c) ClaireAI. All rights reserved.

package openai_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/claireai/claire-go/claire"
	"github.com/claireai/claire-go/openai"
)

func TestChatLLM_Generate(t *testing.T) {
	var sent map[string]any
	httpClient := newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		sent = decodeBody(t, req)
		return jsonResponse(200, map[string]any{
			"id": "chatcmpl-9", "model": "gpt-4o-mini",
			"choices": []map[string]any{{
				"index": 0, "finish_reason": "tool_calls",
				"message": map[string]any{
					"role": "assistant",
					"tool_calls": []map[string]any{{
						"id": "call-1", "type": "function",
						"function": map[string]any{"name": "get_weather", "arguments": `{"location":"NYC"}`},
					}},
				},
			}},
			"usage": map[string]any{"prompt_tokens": 7, "total_tokens": 9},
		}), nil
	})

	llm := openai.NewChatLLMFromConfig(claire.LLMConfigs[*openai.Client]{
		Client:    openai.New("k", openai.WithHTTPClient(httpClient)),
		ModelName: "gpt-4o-mini",
		GenArgs:   map[string]any{"temperature": 0.5},
	})
	if llm.Model() != "gpt-4o-mini" {
		t.Errorf("Model = %q", llm.Model())
	}

	resp, err := llm.Generate(context.Background(),
		[]claire.Message{claire.NewUserMessage("weather in NYC?")},
		claire.NewTool("get_weather", "", nil),
	)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if sent["model"] != "gpt-4o-mini" || sent["temperature"] != 0.5 {
		t.Errorf("request = %v", sent)
	}
	if resp.FinishReason != claire.FinishReasonToolCalls {
		t.Errorf("FinishReason = %q", resp.FinishReason)
	}
	if !resp.HasToolCalls() || resp.ToolCalls[0].Arguments != `{"location":"NYC"}` {
		t.Errorf("ToolCalls = %+v", resp.ToolCalls)
	}
	u := resp.CompletionUsage
	if u == nil || u.CompletionTokens != nil || *u.PromptTokens != 7 || *u.TotalTokens != 9 {
		t.Errorf("usage = %+v", u)
	}
}

func TestChatLLM_GenArgsCopied(t *testing.T) {
	var sent map[string]any
	httpClient := newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		sent = decodeBody(t, req)
		return jsonResponse(200, textCompletion("ok")), nil
	})

	args := map[string]any{"temperature": 0.5}
	llm := openai.NewChatLLM(openai.New("k", openai.WithHTTPClient(httpClient)), "gpt-4o-mini", args)
	args["temperature"] = 1.5
	args["top_p"] = 0.1

	if _, err := llm.Generate(context.Background(), []claire.Message{claire.NewUserMessage("hi")}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if sent["temperature"] != 0.5 {
		t.Errorf("temperature = %v, want 0.5", sent["temperature"])
	}
	if _, ok := sent["top_p"]; ok {
		t.Errorf("top_p sent after caller mutation: %v", sent)
	}
}

type verdict struct {
	Label      string  `json:"label" jsonschema:"required,enum=positive|negative"`
	Confidence float64 `json:"confidence" jsonschema:"required,minimum=0,maximum=1"`
}

func TestChatLLM_GenerateStructured(t *testing.T) {
	var sent map[string]any
	httpClient := newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		sent = decodeBody(t, req)
		return jsonResponse(200, textCompletion(`{"label":"positive","confidence":0.9}`)), nil
	})
	llm := openai.NewChatLLM(openai.New("k", openai.WithHTTPClient(httpClient)), "gpt-4o", nil)

	resp, err := claire.GenerateStructured[verdict](context.Background(), llm,
		[]claire.Message{claire.NewUserMessage("I love it")})
	if err != nil {
		t.Fatalf("GenerateStructured: %v", err)
	}
	if resp.ParsedContent == nil || resp.ParsedContent.Label != "positive" || resp.ParsedContent.Confidence != 0.9 {
		t.Errorf("ParsedContent = %+v", resp.ParsedContent)
	}
	if len(resp.ToolCalls) != 0 {
		t.Errorf("ToolCalls = %+v", resp.ToolCalls)
	}
	js := sent["response_format"].(map[string]any)["json_schema"].(map[string]any)
	if js["name"] != "verdict" {
		t.Errorf("schema name = %v", js["name"])
	}
}

func TestChatLLM_StructuredSchemaViolation(t *testing.T) {
	httpClient := newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, textCompletion(`{"label":"meh","confidence":2}`)), nil
	})
	llm := openai.NewChatLLM(openai.New("k", openai.WithHTTPClient(httpClient)), "gpt-4o", nil)

	_, err := claire.GenerateStructured[verdict](context.Background(), llm,
		[]claire.Message{claire.NewUserMessage("hmm")})
	if !errors.Is(err, claire.ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestChatLLM_PropagatesBackendError(t *testing.T) {
	httpClient := newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(429, map[string]any{"error": map[string]any{"message": "slow down"}}), nil
	})
	llm := openai.NewChatLLM(openai.New("k", openai.WithHTTPClient(httpClient)), "gpt-4o", nil)

	_, err := llm.Generate(context.Background(), []claire.Message{claire.NewUserMessage("hi")})
	var svcErr *claire.ServiceError
	if !errors.As(err, &svcErr) || svcErr.StatusCode != 429 {
		t.Fatalf("err = %v, want ServiceError 429", err)
	}
	if !errors.Is(err, claire.ErrRateLimit) {
		t.Errorf("err = %v, want ErrRateLimit", err)
	}
}

// countingParser wraps the default parser to observe calls.
type countingParser struct {
	openai.OutputParser
	plain, structured int
}

func (p *countingParser) Parse(raw *openai.ChatCompletion) (*claire.RawResponse, error) {
	p.plain++
	return p.OutputParser.Parse(raw)
}

func (p *countingParser) ParseStructured(raw *openai.ChatCompletion, s *claire.Structure) (*claire.RawResponse, error) {
	p.structured++
	return p.OutputParser.ParseStructured(raw, s)
}

func TestChatLLM_OptionsAndMiddleware(t *testing.T) {
	httpClient := newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, textCompletion(`{"label":"negative","confidence":0.1}`)), nil
	})

	parser := &countingParser{}
	var seen []*claire.Call
	record := func(next claire.GenerateFunc) claire.GenerateFunc {
		return func(ctx context.Context, call *claire.Call) (*claire.RawResponse, error) {
			seen = append(seen, call)
			return next(ctx, call)
		}
	}
	llm := openai.NewChatLLM(openai.New("k", openai.WithHTTPClient(httpClient)), "gpt-4o", nil,
		openai.WithOutputParser(parser),
		openai.WithMiddleware(record),
	)

	msgs := []claire.Message{claire.NewUserMessage("hi")}
	if _, err := llm.Generate(context.Background(), msgs); err != nil {
		t.Fatal(err)
	}
	if _, err := claire.GenerateStructured[verdict](context.Background(), llm, msgs); err != nil {
		t.Fatal(err)
	}

	if parser.plain != 1 || parser.structured != 1 {
		t.Errorf("parser calls = %d plain, %d structured", parser.plain, parser.structured)
	}
	if len(seen) != 2 || seen[0].Structure != nil || seen[1].Structure == nil {
		t.Errorf("middleware saw %+v", seen)
	}
}
