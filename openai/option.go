// Copyright (c) ClaireAI. All rights reserved.

package openai

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/claireai/claire-go/claire"
)

// clientConfig holds resolved configuration for the OpenAI client.
type clientConfig struct {
	baseURL         string
	organization    string
	apiVersion      string
	httpClient      *http.Client
	headers         map[string]string
	azureCredential azcore.TokenCredential
}

// Option configures an OpenAI [Client].
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL (e.g., for Azure OpenAI or proxies).
func WithBaseURL(url string) Option {
	return func(c *clientConfig) { c.baseURL = url }
}

// WithOrganization sets the OpenAI organization header.
func WithOrganization(org string) Option {
	return func(c *clientConfig) { c.organization = org }
}

// WithAPIVersion appends the api-version query parameter to every request,
// as required by Azure OpenAI deployments.
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) { c.apiVersion = version }
}

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithHeaders adds custom headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) { c.headers = headers }
}

// WithAzureCredential enables Azure AD token authentication using the provided credential.
// When set, the client will obtain and refresh tokens automatically instead of using API keys.
func WithAzureCredential(cred azcore.TokenCredential) Option {
	return func(c *clientConfig) { c.azureCredential = cred }
}

// ChatLLMOption configures a [ChatLLM].
type ChatLLMOption func(*ChatLLM)

// WithOutputParser replaces the default [OutputParser].
func WithOutputParser(p claire.OutputParser[*ChatCompletion]) ChatLLMOption {
	return func(l *ChatLLM) { l.parser = p }
}

// WithMiddleware adds middleware around every call of the [ChatLLM].
// Middleware is applied in the order provided (first = outermost).
func WithMiddleware(mw ...claire.Middleware) ChatLLMOption {
	return func(l *ChatLLM) { l.middleware = append(l.middleware, mw...) }
}
