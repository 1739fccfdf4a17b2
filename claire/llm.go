// Copyright (c) ClaireAI. All rights reserved.

package claire

import "context"

// LLM is the adapter capability implemented by provider packages. Each call
// issues exactly one backend request; backend errors are returned unmodified.
type LLM interface {
	// Generate sends messages to the model and returns the normalized response.
	Generate(ctx context.Context, messages []Message, tools ...Tool) (*RawResponse, error)

	// GenerateWithStructuredOutput constrains the completion to structure and
	// returns the response with its validated payload in ParsedContent.
	GenerateWithStructuredOutput(ctx context.Context, messages []Message, structure *Structure, tools ...Tool) (*RawResponse, error)
}

// OutputParser maps a backend's raw completion of type R into a [Response].
// Missing optional fields degrade to their defaults; an unusable top-level
// shape fails with [ErrInvalidResponse].
type OutputParser[R any] interface {
	// Parse normalizes a plain completion. ParsedContent is always nil.
	Parse(raw R) (*RawResponse, error)

	// ParseStructured normalizes a schema-constrained completion, forwarding
	// the payload the backend attached for structure.
	ParseStructured(raw R, structure *Structure) (*RawResponse, error)
}

// GenerateStructured runs a structured completion whose schema is generated
// from T and decodes the payload into T.
func GenerateStructured[T any](ctx context.Context, llm LLM, messages []Message, tools ...Tool) (*Response[T], error) {
	resp, err := llm.GenerateWithStructuredOutput(ctx, messages, StructureFor[T](), tools...)
	if err != nil {
		return nil, err
	}
	return Decode[T](resp)
}
