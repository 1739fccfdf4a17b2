// Copyright (c) ClaireAI. All rights reserved.

package openai

import "github.com/claireai/claire-go/claire"

// OutputParser normalizes a [ChatCompletion] into a [claire.Response]. Only
// the first choice is read. It holds no state and is safe for concurrent use.
type OutputParser struct{}

var _ claire.OutputParser[*ChatCompletion] = (*OutputParser)(nil)

// Parse maps a plain completion. Missing optional fields degrade to their
// defaults: empty content, [claire.FinishReasonMissing], nil usage.
func (p *OutputParser) Parse(raw *ChatCompletion) (*claire.RawResponse, error) {
	resp, err := p.parse(raw)
	if err != nil {
		return nil, err
	}
	resp.ToolCalls = parseToolCalls(raw.Choices[0].Message.ToolCalls)
	return resp, nil
}

// ParseStructured maps a structured completion, forwarding the payload
// attached by [Client.ParseChatCompletion] verbatim. Tool calls are always
// empty on this path.
func (p *OutputParser) ParseStructured(raw *ChatCompletion, structure *claire.Structure) (*claire.RawResponse, error) {
	resp, err := p.parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed := raw.Choices[0].Message.Parsed; len(parsed) > 0 {
		resp.ParsedContent = &parsed
	}
	return resp, nil
}

func (p *OutputParser) parse(raw *ChatCompletion) (*claire.RawResponse, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	choice := raw.Choices[0]

	resp := &claire.RawResponse{
		CompletionID:    raw.ID,
		Model:           raw.Model,
		FinishReason:    claire.FinishReasonMissing,
		Reasoning:       choice.Message.Reasoning,
		ToolCalls:       []claire.ToolCall{},
		CompletionUsage: parseUsage(raw.Usage),
	}
	if choice.Message.Content != nil {
		resp.Content = *choice.Message.Content
	}
	if choice.FinishReason != "" {
		resp.FinishReason = claire.FinishReason(choice.FinishReason)
	}
	return resp, nil
}

// parseToolCalls normalises every call to the function type; only function
// tools are ever offered to the backend.
func parseToolCalls(calls []ToolCall) []claire.ToolCall {
	out := make([]claire.ToolCall, 0, len(calls))
	for _, tc := range calls {
		out = append(out, claire.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Type:      claire.ToolCallTypeFunction,
			Arguments: tc.Function.ArgumentsString(),
		})
	}
	return out
}

func parseUsage(u *Usage) *claire.CompletionUsage {
	if u == nil {
		return nil
	}
	return &claire.CompletionUsage{
		CompletionTokens: u.CompletionTokens,
		PromptTokens:     u.PromptTokens,
		TotalTokens:      u.TotalTokens,
	}
}
