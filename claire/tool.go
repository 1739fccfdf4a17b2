// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"context"
	"encoding/json"
)

// Tool is a function declaration exposed to the model. The model may ask for
// it to be called through a [ToolCall]; running it is up to the caller.
type Tool interface {
	// Name returns the function name as exposed to the model.
	Name() string

	// Description returns a human-readable description for the model.
	Description() string

	// Parameters returns the JSON Schema describing the function's input.
	Parameters() json.RawMessage
}

// FunctionTool is a concrete [Tool], optionally backed by a Go function.
type FunctionTool struct {
	name        string
	description string
	parameters  json.RawMessage
	fn          func(ctx context.Context, args json.RawMessage) (any, error)
}

// NewTool creates a declaration-only [FunctionTool] from a raw JSON schema.
func NewTool(name, description string, parameters json.RawMessage) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
	}
}

// NewTypedTool creates a [FunctionTool] whose schema is generated from Args
// and whose [FunctionTool.Invoke] decodes the arguments before calling fn.
//
//	type WeatherArgs struct {
//	    Location string `json:"location" jsonschema:"description=City name,required"`
//	}
func NewTypedTool[Args any](name, description string, fn func(ctx context.Context, args Args) (any, error)) *FunctionTool {
	t := NewTool(name, description, GenerateSchema[Args]())
	t.fn = func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args Args
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, &ToolError{
					ToolName: name,
					Message:  "invalid arguments: " + err.Error(),
					Err:      ErrTool,
				}
			}
		}
		return fn(ctx, args)
	}
	return t
}

func (t *FunctionTool) Name() string                { return t.name }
func (t *FunctionTool) Description() string         { return t.description }
func (t *FunctionTool) Parameters() json.RawMessage { return t.parameters }

// Invoke calls the tool's backing function with the arguments of call.
func (t *FunctionTool) Invoke(ctx context.Context, call ToolCall) (any, error) {
	if t.fn == nil {
		return nil, &ToolError{
			ToolName: t.name,
			Message:  "tool is declaration-only and cannot be invoked",
			Err:      ErrTool,
		}
	}
	return t.fn(ctx, json.RawMessage(call.Arguments))
}
