// Copyright (c) ClaireAI. All rights reserved.

package claire_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/claireai/claire-go/claire"
)

func TestResponse_HasToolCalls(t *testing.T) {
	r := &claire.RawResponse{}
	if r.HasToolCalls() {
		t.Error("empty response reports tool calls")
	}
	r.ToolCalls = []claire.ToolCall{{ID: "call-1", Name: "get_weather", Type: claire.ToolCallTypeFunction}}
	if !r.HasToolCalls() {
		t.Error("HasToolCalls = false with one tool call")
	}
}

type answer struct {
	Key string `json:"key"`
}

func TestDecode(t *testing.T) {
	payload := json.RawMessage(`{"key":"value"}`)
	total := 3
	raw := &claire.RawResponse{
		CompletionID:    "cmpl-1",
		Content:         `{"key":"value"}`,
		Model:           "gpt-4",
		FinishReason:    claire.FinishReasonStop,
		ParsedContent:   &payload,
		ToolCalls:       []claire.ToolCall{},
		CompletionUsage: &claire.CompletionUsage{TotalTokens: &total},
	}

	got, err := claire.Decode[answer](raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ParsedContent == nil || got.ParsedContent.Key != "value" {
		t.Errorf("ParsedContent = %+v", got.ParsedContent)
	}
	if got.CompletionID != "cmpl-1" || got.Model != "gpt-4" || got.FinishReason != claire.FinishReasonStop {
		t.Errorf("metadata not carried over: %+v", got)
	}
	if got.CompletionUsage == nil || *got.CompletionUsage.TotalTokens != 3 {
		t.Errorf("usage = %+v", got.CompletionUsage)
	}
}

func TestDecode_NilPayload(t *testing.T) {
	got, err := claire.Decode[answer](&claire.RawResponse{Content: "hi"})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ParsedContent != nil {
		t.Errorf("ParsedContent = %+v, want nil", got.ParsedContent)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	payload := json.RawMessage(`{"key":42}`)
	_, err := claire.Decode[answer](&claire.RawResponse{ParsedContent: &payload})
	if !errors.Is(err, claire.ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}
