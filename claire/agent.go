// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"context"
	"fmt"
	"maps"

	"github.com/google/uuid"
)

// DefaultAgentDescription is used when an agent is created without a description.
const DefaultAgentDescription = "No description provided."

// PromptSystem is the prompts key prepended as the system message.
const PromptSystem = "system"

// Agent is a named, configured participant that owns an [LLM], a set of
// declared tools and its prompts. Agent implements [LLM], so
// [GenerateStructured] works on it directly.
//
// Create one with [NewAgent] and functional options:
//
//	agent := claire.NewAgent("assistant",
//	    claire.WithLLM(llm),
//	    claire.WithPrompts(map[string]string{"system": "You are helpful."}),
//	    claire.WithTools(weatherTool),
//	)
type Agent struct {
	id          string
	name        string
	description string
	isCallable  bool
	llm         LLM
	tools       []Tool
	handoffs    []string
	prompts     map[string]string
	extras      map[string]any
}

var _ LLM = (*Agent)(nil)

// AgentOption configures an [Agent] via [NewAgent].
type AgentOption func(*Agent)

// WithDescription sets the agent's description.
func WithDescription(desc string) AgentOption {
	return func(a *Agent) { a.description = desc }
}

// WithCallable marks the agent as callable by other agents.
func WithCallable(callable bool) AgentOption {
	return func(a *Agent) { a.isCallable = callable }
}

// WithLLM sets the model the agent delegates to.
func WithLLM(llm LLM) AgentOption {
	return func(a *Agent) { a.llm = llm }
}

// WithTools adds tools to the agent's declared tool set.
func WithTools(tools ...Tool) AgentOption {
	return func(a *Agent) { a.tools = append(a.tools, tools...) }
}

// WithHandoffs records the names of agents this agent may hand off to.
// Handoffs are stored only.
func WithHandoffs(names ...string) AgentOption {
	return func(a *Agent) { a.handoffs = append(a.handoffs, names...) }
}

// WithPrompts merges prompts into the agent's prompt map.
func WithPrompts(prompts map[string]string) AgentOption {
	return func(a *Agent) { maps.Copy(a.prompts, prompts) }
}

// WithExtras merges arbitrary metadata into the agent.
func WithExtras(extras map[string]any) AgentOption {
	return func(a *Agent) { maps.Copy(a.extras, extras) }
}

// NewAgent creates an Agent with a fresh UUID and the given options.
func NewAgent(name string, opts ...AgentOption) *Agent {
	a := &Agent{
		id:          uuid.NewString(),
		name:        name,
		description: DefaultAgentDescription,
		prompts:     map[string]string{},
		extras:      map[string]any{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.description == "" {
		a.description = DefaultAgentDescription
	}
	return a
}

// AgentFromConfig builds an agent from cfg. When llm is nil and cfg declares
// an llm block, the model is resolved through the provider registry.
func AgentFromConfig(cfg *AgentConfigs, llm LLM) (*Agent, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil agent config", ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if llm == nil && cfg.LLM != nil {
		var err error
		if llm, err = NewLLM(*cfg.LLM); err != nil {
			return nil, fmt.Errorf("agent %q: %w", cfg.Name, err)
		}
	}

	tools := make([]Tool, 0, len(cfg.Tools))
	for _, spec := range cfg.Tools {
		t, err := spec.Tool()
		if err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}

	return NewAgent(cfg.Name,
		WithDescription(cfg.Description),
		WithCallable(cfg.IsCallable),
		WithLLM(llm),
		WithTools(tools...),
		WithHandoffs(cfg.Handoffs...),
		WithPrompts(cfg.Prompts),
		WithExtras(cfg.Extras),
	), nil
}

// LoadAgent reads an agent configuration file and builds the agent.
func LoadAgent(path string) (*Agent, error) {
	cfg, err := LoadAgentConfigs(path)
	if err != nil {
		return nil, err
	}
	return AgentFromConfig(cfg, nil)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() string { return a.id }

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// Description returns the agent's description.
func (a *Agent) Description() string { return a.description }

// IsCallable reports whether other agents may call this agent.
func (a *Agent) IsCallable() bool { return a.isCallable }

// LLM returns the model the agent delegates to, or nil.
func (a *Agent) LLM() LLM { return a.llm }

// Tools returns a copy of the agent's declared tools.
func (a *Agent) Tools() []Tool { return append([]Tool(nil), a.tools...) }

// Handoffs returns a copy of the handoff agent names.
func (a *Agent) Handoffs() []string { return append([]string(nil), a.handoffs...) }

// Prompt returns the prompt stored under key.
func (a *Agent) Prompt(key string) (string, bool) {
	p, ok := a.prompts[key]
	return p, ok
}

// Extra returns the metadata value stored under key.
func (a *Agent) Extra(key string) (any, bool) {
	v, ok := a.extras[key]
	return v, ok
}

// Generate prepends the system prompt, declares the agent's tools plus any
// per-call tools and delegates to the agent's LLM.
func (a *Agent) Generate(ctx context.Context, messages []Message, tools ...Tool) (*RawResponse, error) {
	if a.llm == nil {
		return nil, fmt.Errorf("%w: agent %q has no llm", ErrConfig, a.name)
	}
	return a.llm.Generate(ctx, a.prepareMessages(messages), a.mergeTools(tools)...)
}

// GenerateWithStructuredOutput is the structured counterpart of [Agent.Generate].
func (a *Agent) GenerateWithStructuredOutput(ctx context.Context, messages []Message, structure *Structure, tools ...Tool) (*RawResponse, error) {
	if a.llm == nil {
		return nil, fmt.Errorf("%w: agent %q has no llm", ErrConfig, a.name)
	}
	return a.llm.GenerateWithStructuredOutput(ctx, a.prepareMessages(messages), structure, a.mergeTools(tools)...)
}

func (a *Agent) prepareMessages(messages []Message) []Message {
	return PrependSystemPrompt(messages, a.prompts[PromptSystem])
}

func (a *Agent) mergeTools(extra []Tool) []Tool {
	if len(extra) == 0 {
		return a.tools
	}
	all := make([]Tool, 0, len(a.tools)+len(extra))
	all = append(all, a.tools...)
	return append(all, extra...)
}
