// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"encoding/json"
	"fmt"
)

// FinishReason indicates why the model stopped generating.
type FinishReason string

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonToolCalls     FinishReason = "tool_calls"
	FinishReasonContentFilter FinishReason = "content_filter"
	FinishReasonFunctionCall  FinishReason = "function_call"

	// FinishReasonMissing is used whenever the backend does not report a reason.
	FinishReasonMissing FinishReason = "missing"
)

// ToolCallTypeFunction is the only tool call type currently produced.
const ToolCallTypeFunction = "function"

// CompletionUsage holds token accounting for a completion. Each counter is
// nil when the backend did not report it.
type CompletionUsage struct {
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	PromptTokens     *int `json:"prompt_tokens,omitempty"`
	TotalTokens      *int `json:"total_tokens,omitempty"`
}

// ToolCall is a backend-requested invocation of an external function.
type ToolCall struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	// Arguments is the backend's raw argument payload, usually a JSON object
	// encoded as a string. Empty when the backend sent none.
	Arguments string `json:"arguments,omitempty"`
}

// DecodeArguments unmarshals the raw arguments into v.
func (tc *ToolCall) DecodeArguments(v any) error {
	if tc.Arguments == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(tc.Arguments), v); err != nil {
		return &ToolError{ToolName: tc.Name, Message: "invalid arguments: " + err.Error(), Err: ErrTool}
	}
	return nil
}

// ArgumentMap decodes the raw arguments as a key/value mapping. It returns
// nil when no arguments were sent.
func (tc *ToolCall) ArgumentMap() (map[string]any, error) {
	if tc.Arguments == "" {
		return nil, nil
	}
	var m map[string]any
	if err := tc.DecodeArguments(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// Response is the vendor-neutral result of one completion call. T is the
// structured-output type; ParsedContent is nil unless a structured call was
// made and the backend returned a payload.
type Response[T any] struct {
	CompletionID    string           `json:"completion_id"`
	Content         string           `json:"content"`
	Model           string           `json:"model"`
	FinishReason    FinishReason     `json:"finish_reason"`
	Reasoning       *string          `json:"reasoning,omitempty"`
	ParsedContent   *T               `json:"parsed_content,omitempty"`
	ToolCalls       []ToolCall       `json:"tool_calls"`
	CompletionUsage *CompletionUsage `json:"completion_usage,omitempty"`
}

// RawResponse is a [Response] whose structured payload, if any, is kept as the
// schema-validated JSON document.
type RawResponse = Response[json.RawMessage]

// HasToolCalls reports whether the backend requested any tool invocation.
func (r *Response[T]) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

// Decode converts a raw response into a typed one by unmarshaling the
// structured payload into T. A nil payload stays nil.
func Decode[T any](r *RawResponse) (*Response[T], error) {
	out := &Response[T]{
		CompletionID:    r.CompletionID,
		Content:         r.Content,
		Model:           r.Model,
		FinishReason:    r.FinishReason,
		Reasoning:       r.Reasoning,
		ToolCalls:       r.ToolCalls,
		CompletionUsage: r.CompletionUsage,
	}
	if r.ParsedContent != nil && len(*r.ParsedContent) > 0 {
		var v T
		if err := json.Unmarshal(*r.ParsedContent, &v); err != nil {
			return nil, fmt.Errorf("%w: decode parsed content as %T: %v", ErrInvalidResponse, v, err)
		}
		out.ParsedContent = &v
	}
	return out, nil
}
