// Copyright (c) ClaireAI. All rights reserved.

// Package openai implements [claire.LLM] for the OpenAI Chat Completions API
// and compatible servers, including Azure OpenAI.
//
// Create a client, wrap it in a [ChatLLM] and hand it to an agent:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//	llm := openai.NewChatLLM(client, "gpt-4o-mini", map[string]any{"temperature": 0.2})
//	agent := claire.NewAgent("assistant", claire.WithLLM(llm))
//
// Importing the package registers the "openai" and "azure-openai" providers,
// so agent YAML files can name them in their llm block.
//
// # Structured output
//
// [Client.ParseChatCompletion] sends a json_schema response format and
// validates the returned content against the schema before attaching it to
// the choice. [OutputParser.ParseStructured] forwards that payload; tool
// calls are not reported on this path.
//
// # Configuration
//
// Use functional options to configure the client:
//
//   - [WithBaseURL]: override the API endpoint (e.g., Azure OpenAI)
//   - [WithAPIVersion]: set the Azure api-version query parameter
//   - [WithOrganization]: set the OpenAI organization header
//   - [WithHTTPClient]: provide a custom http.Client
//   - [WithHeaders]: add custom headers to every request
//   - [WithAzureCredential]: authenticate with an Azure AD token credential
//
// # Testing
//
// The client uses an unexported transport interface internally.
// For testing, provide a mock http.Client via [WithHTTPClient]
// with a custom RoundTripper.
package openai
