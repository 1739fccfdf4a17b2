// Copyright (c) ClaireAI. All rights reserved.

package openai

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/claireai/claire-go/claire"
)

const chatCompletionsPath = "/chat/completions"

// Client is a thin Chat Completions API client. Use [New] to create one.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	tp transport
}

// New creates an OpenAI [Client] with the given API key and options.
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"),
//	    openai.WithOrganization("org-123"),
//	)
func New(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return &Client{tp: newHTTPTransport(apiKey, cfg)}
}

// CreateChatCompletion sends a plain completion request. HTTP failures are
// returned as [*claire.ServiceError].
func (c *Client) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletion, error) {
	for i := range req.Messages {
		if err := req.Messages[i].Validate(); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}

	resp, err := c.tp.do(ctx, http.MethodPost, chatCompletionsPath, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", claire.ErrService, err)
	}
	return unmarshalChatCompletion(body)
}

// ParseChatCompletion sends a completion request constrained to structure
// with a json_schema response format. The content of every choice is
// validated against the schema and attached as [CompletionMessage.Parsed].
// Choices without content (for example refusals) keep a nil payload.
func (c *Client) ParseChatCompletion(ctx context.Context, req *ChatCompletionRequest, structure *claire.Structure) (*ChatCompletion, error) {
	if err := structure.Validate(); err != nil {
		return nil, err
	}

	constrained := *req
	constrained.ResponseFormat = responseFormatFor(structure)

	completion, err := c.CreateChatCompletion(ctx, &constrained)
	if err != nil {
		return nil, err
	}

	for i := range completion.Choices {
		msg := &completion.Choices[i].Message
		if msg.Content == nil || *msg.Content == "" {
			continue
		}
		doc := []byte(*msg.Content)
		if err := structure.ValidateDocument(doc); err != nil {
			return nil, fmt.Errorf("choice %d: %w", i, err)
		}
		msg.Parsed = doc
	}
	return completion, nil
}
