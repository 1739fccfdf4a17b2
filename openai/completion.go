// Copyright (c) ClaireAI. All rights reserved.

package openai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/claireai/claire-go/claire"
)

// ChatCompletion is the Chat Completions API response. Only the fields the
// parser reads are modeled; optional ones are pointers or may be empty.
type ChatCompletion struct {
	ID      string   `json:"id" validate:"required"`
	Object  string   `json:"object,omitempty"`
	Created int64    `json:"created,omitempty"`
	Model   string   `json:"model" validate:"required"`
	Choices []Choice `json:"choices" validate:"min=1"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// Validate checks the top-level shape: identifier, model and at least one
// choice. Failures wrap [claire.ErrInvalidResponse].
func (c *ChatCompletion) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil chat completion", claire.ErrInvalidResponse)
	}
	if err := claire.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %v", claire.ErrInvalidResponse, err)
	}
	return nil
}

// Choice is one candidate completion.
type Choice struct {
	Index        int               `json:"index"`
	Message      CompletionMessage `json:"message"`
	FinishReason string            `json:"finish_reason,omitempty"`
}

// CompletionMessage is the assistant message of a [Choice].
type CompletionMessage struct {
	Role      string     `json:"role,omitempty"`
	Content   *string    `json:"content"`
	Reasoning *string    `json:"reasoning,omitempty"`
	Refusal   *string    `json:"refusal,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// Parsed holds the schema-validated structured payload. It is set by
	// [Client.ParseChatCompletion] and never read from the wire.
	Parsed json.RawMessage `json:"-"`
}

// ToolCall is a function invocation requested by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type,omitempty"`
	Function FunctionCall `json:"function"`
}

// FunctionCall names the function and carries its arguments. Arguments is
// normally a JSON-encoded string; some compatible servers send an object.
type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ArgumentsString returns the arguments in their raw, unparsed form: the
// decoded string when the server sent a string, else the JSON text.
func (f FunctionCall) ArgumentsString() string {
	raw := bytes.TrimSpace(f.Arguments)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// Usage is the token accounting block. Counters the server omits stay nil.
type Usage struct {
	PromptTokens     *int `json:"prompt_tokens,omitempty"`
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	TotalTokens      *int `json:"total_tokens,omitempty"`
}

// unmarshalChatCompletion parses the JSON response body.
func unmarshalChatCompletion(data []byte) (*ChatCompletion, error) {
	var resp ChatCompletion
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", claire.ErrInvalidResponse, err)
	}
	return &resp, nil
}
