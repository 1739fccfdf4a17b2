// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"encoding/json"
	"fmt"
)

// LLMConfigs bundles what an adapter needs to reach a backend: the backend's
// native client handle, the model name and the generation arguments passed
// verbatim on every call.
type LLMConfigs[C any] struct {
	Client    C
	ModelName string
	GenArgs   map[string]any
}

// LLMSpec is the serializable description of an [LLM], resolved through the
// provider registry by [NewLLM].
type LLMSpec struct {
	Provider string `mapstructure:"provider" validate:"required"`
	Model    string `mapstructure:"model" validate:"required"`
	BaseURL  string `mapstructure:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `mapstructure:"api_key_env"`

	// APIVersion is sent as the api-version query parameter (Azure OpenAI).
	APIVersion string `mapstructure:"api_version"`

	GenArgs map[string]any `mapstructure:"gen_args"`
}

// ToolSpec declares a tool in an agent configuration file.
type ToolSpec struct {
	Name        string         `mapstructure:"name" validate:"required"`
	Description string         `mapstructure:"description"`
	Parameters  map[string]any `mapstructure:"parameters"`
}

// Tool converts the declaration into a declaration-only [FunctionTool].
func (s ToolSpec) Tool() (*FunctionTool, error) {
	params := s.Parameters
	if params == nil {
		params = map[string]any{"type": "object", "properties": map[string]any{}}
	}
	b, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: tool %q parameters: %v", ErrConfig, s.Name, err)
	}
	return NewTool(s.Name, s.Description, b), nil
}

// AgentConfigs is the declarative form of an [Agent].
type AgentConfigs struct {
	Name        string            `mapstructure:"name" validate:"required"`
	Description string            `mapstructure:"description"`
	IsCallable  bool              `mapstructure:"is_callable"`
	LLM         *LLMSpec          `mapstructure:"llm"`
	Tools       []ToolSpec        `mapstructure:"tools" validate:"dive"`
	Handoffs    []string          `mapstructure:"handoffs"`
	Prompts     map[string]string `mapstructure:"prompts"`
	Extras      map[string]any    `mapstructure:"extras"`
}

// Validate checks required fields of the configuration.
func (c *AgentConfigs) Validate() error {
	if err := validate().Struct(c); err != nil {
		return fmt.Errorf("%w: agent config: %v", ErrConfig, err)
	}
	return nil
}
