// Copyright (c) ClaireAI. All rights reserved.

package openai

import (
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/claireai/claire-go/claire"
)

// Provider names registered with [claire.RegisterProvider].
const (
	ProviderOpenAI      = "openai"
	ProviderAzureOpenAI = "azure-openai"
)

const (
	defaultAPIKeyEnv      = "OPENAI_API_KEY"
	defaultAzureAPIKeyEnv = "AZURE_OPENAI_API_KEY"
)

func init() {
	claire.RegisterProvider(ProviderOpenAI, newFromSpec)
	claire.RegisterProvider(ProviderAzureOpenAI, newFromSpec)
}

func newFromSpec(spec claire.LLMSpec) (claire.LLM, error) {
	client, err := NewClientFromSpec(spec)
	if err != nil {
		return nil, err
	}
	return NewChatLLM(client, spec.Model, spec.GenArgs), nil
}

// NewClientFromSpec builds a [Client] for an "openai" or "azure-openai" spec.
//
// For "openai" the API key is read from spec.APIKeyEnv (default
// OPENAI_API_KEY); a key is optional only when a base URL points at a
// compatible server. For "azure-openai" the base URL is required; the key is
// read from spec.APIKeyEnv (default AZURE_OPENAI_API_KEY) and sent as the
// api-key header, otherwise DefaultAzureCredential is used.
func NewClientFromSpec(spec claire.LLMSpec) (*Client, error) {
	switch spec.Provider {
	case ProviderOpenAI:
		return newOpenAIClient(spec)
	case ProviderAzureOpenAI:
		return newAzureClient(spec)
	default:
		return nil, fmt.Errorf("%w: %q", claire.ErrUnknownProvider, spec.Provider)
	}
}

func newOpenAIClient(spec claire.LLMSpec) (*Client, error) {
	keyEnv := spec.APIKeyEnv
	if keyEnv == "" {
		keyEnv = defaultAPIKeyEnv
	}
	key := os.Getenv(keyEnv)
	if key == "" && spec.BaseURL == "" {
		return nil, fmt.Errorf("%w: %s is not set", claire.ErrConfig, keyEnv)
	}

	var opts []Option
	if spec.BaseURL != "" {
		opts = append(opts, WithBaseURL(spec.BaseURL))
	}
	if spec.APIVersion != "" {
		opts = append(opts, WithAPIVersion(spec.APIVersion))
	}
	return New(key, opts...), nil
}

func newAzureClient(spec claire.LLMSpec) (*Client, error) {
	if spec.BaseURL == "" {
		return nil, fmt.Errorf("%w: azure-openai requires base_url", claire.ErrConfig)
	}
	opts := []Option{WithBaseURL(spec.BaseURL)}
	if spec.APIVersion != "" {
		opts = append(opts, WithAPIVersion(spec.APIVersion))
	}

	keyEnv := spec.APIKeyEnv
	if keyEnv == "" {
		keyEnv = defaultAzureAPIKeyEnv
	}
	if key := os.Getenv(keyEnv); key != "" {
		opts = append(opts, WithHeaders(map[string]string{"api-key": key}))
	} else {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: azure credential: %w", claire.ErrConfig, err)
		}
		opts = append(opts, WithAzureCredential(cred))
	}
	return New("", opts...), nil
}
