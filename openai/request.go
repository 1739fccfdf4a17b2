// Copyright (c) ClaireAI. All rights reserved.

package openai

import (
	"encoding/json"
	"maps"

	"github.com/claireai/claire-go/claire"
)

// ChatCompletionRequest is one Chat Completions API call. GenArgs are merged
// into the top-level body verbatim (temperature, max_tokens, seed, ...);
// the reserved keys model, messages, tools and response_format always win.
type ChatCompletionRequest struct {
	Model          string
	Messages       []claire.Message
	Tools          []claire.Tool
	ResponseFormat *ResponseFormat
	GenArgs        map[string]any
}

// ResponseFormat constrains the completion output.
type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

// JSONSchema is the json_schema response format payload.
type JSONSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema"`
	Strict      bool            `json:"strict,omitempty"`
}

type toolSpec struct {
	Type     string       `json:"type"`
	Function functionSpec `json:"function"`
}

type functionSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// responseFormatFor builds the json_schema response format for structure.
func responseFormatFor(structure *claire.Structure) *ResponseFormat {
	return &ResponseFormat{
		Type: "json_schema",
		JSONSchema: &JSONSchema{
			Name:        structure.Name,
			Description: structure.Description,
			Schema:      structure.Schema,
			Strict:      structure.Strict,
		},
	}
}

// MarshalJSON encodes the request body.
func (r *ChatCompletionRequest) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.GenArgs)+4)
	maps.Copy(body, r.GenArgs)
	delete(body, "tools")
	delete(body, "response_format")

	body["model"] = r.Model
	messages := r.Messages
	if messages == nil {
		messages = []claire.Message{}
	}
	body["messages"] = messages

	if len(r.Tools) > 0 {
		tools := make([]toolSpec, 0, len(r.Tools))
		for _, t := range r.Tools {
			tools = append(tools, toolSpec{
				Type: claire.ToolCallTypeFunction,
				Function: functionSpec{
					Name:        t.Name(),
					Description: t.Description(),
					Parameters:  t.Parameters(),
				},
			})
		}
		body["tools"] = tools
	}
	if r.ResponseFormat != nil {
		body["response_format"] = r.ResponseFormat
	}
	return json.Marshal(body)
}
