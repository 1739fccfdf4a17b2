// Copyright (c) ClaireAI. All rights reserved.

package claire

import "context"

// Call carries the inputs of one completion through the middleware pipeline.
type Call struct {
	Messages []Message
	Tools    []Tool

	// Structure is nil for plain completions.
	Structure *Structure
}

// GenerateFunc is the function signature for processing a completion call.
type GenerateFunc func(ctx context.Context, call *Call) (*RawResponse, error)

// Middleware wraps a [GenerateFunc] to add cross-cutting behavior.
// Middleware should call next to continue the chain, or return early to short-circuit.
type Middleware func(next GenerateFunc) GenerateFunc

// Chain applies middleware in order (first in list = outermost wrapper).
func Chain(handler GenerateFunc, mws ...Middleware) GenerateFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
