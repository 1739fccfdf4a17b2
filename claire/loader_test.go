// Copyright (c) ClaireAI. All rights reserved.

package claire_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/claireai/claire-go/claire"
)

const exampleAgentYAML = `
name: assistant
description: Answers questions.
is_callable: true
llm:
  provider: ${CLAIRE_TEST_PROVIDER}
  model: ${CLAIRE_TEST_MODEL}
  api_key_env: OPENAI_API_KEY
  gen_args:
    temperature: 0.2
    max_tokens: 256
tools:
  - name: get_weather
    description: Current weather for a city.
    parameters:
      type: object
      properties:
        location:
          type: string
      required: [location]
handoffs: [researcher]
prompts:
  system: You are helpful.
extras:
  team: support
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadAgentConfigs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "agent.yml", exampleAgentYAML)
	writeFile(t, dir, ".env", "CLAIRE_TEST_MODEL=gpt-4o-mini\n")
	t.Setenv("CLAIRE_TEST_PROVIDER", "openai")
	t.Cleanup(func() { os.Unsetenv("CLAIRE_TEST_MODEL") })

	cfg, err := claire.LoadAgentConfigs(path)
	if err != nil {
		t.Fatalf("LoadAgentConfigs: %v", err)
	}

	if cfg.Name != "assistant" || !cfg.IsCallable {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LLM == nil {
		t.Fatal("llm block missing")
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want value from .env", cfg.LLM.Model)
	}
	if cfg.LLM.GenArgs["temperature"] != 0.2 {
		t.Errorf("gen_args = %v", cfg.LLM.GenArgs)
	}
	if len(cfg.Tools) != 1 || cfg.Tools[0].Name != "get_weather" || cfg.Tools[0].Parameters["type"] != "object" {
		t.Errorf("tools = %+v", cfg.Tools)
	}
	if len(cfg.Handoffs) != 1 || cfg.Handoffs[0] != "researcher" {
		t.Errorf("handoffs = %v", cfg.Handoffs)
	}
	if cfg.Prompts["system"] != "You are helpful." {
		t.Errorf("prompts = %v", cfg.Prompts)
	}
	if cfg.Extras["team"] != "support" {
		t.Errorf("extras = %v", cfg.Extras)
	}
}

func TestParseAgentConfigs(t *testing.T) {
	cfg, err := claire.ParseAgentConfigs(strings.NewReader("name: mini\n"))
	if err != nil {
		t.Fatalf("ParseAgentConfigs: %v", err)
	}
	if cfg.Name != "mini" || cfg.LLM != nil {
		t.Errorf("cfg = %+v", cfg)
	}

	agent, err := claire.AgentFromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("AgentFromConfig: %v", err)
	}
	if agent.Description() != claire.DefaultAgentDescription {
		t.Errorf("description = %q", agent.Description())
	}
}

func TestLoadAgentConfigs_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yml")},
		{"missing name", writeFile(t, dir, "noname.yml", "description: x\n")},
		{"llm without model", writeFile(t, dir, "nomodel.yml", "name: a\nllm:\n  provider: openai\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := claire.LoadAgentConfigs(tt.path); !errors.Is(err, claire.ErrConfig) {
				t.Errorf("err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestLoadAgent(t *testing.T) {
	claire.RegisterProvider("loader-test", func(spec claire.LLMSpec) (claire.LLM, error) {
		return &mockLLM{}, nil
	})
	dir := t.TempDir()
	path := writeFile(t, dir, "agent.yaml", "name: loaded\nllm:\n  provider: loader-test\n  model: m\nprompts:\n  system: hi\n")

	agent, err := claire.LoadAgent(path)
	if err != nil {
		t.Fatalf("LoadAgent: %v", err)
	}
	if agent.Name() != "loaded" || agent.LLM() == nil {
		t.Errorf("agent = %q llm=%v", agent.Name(), agent.LLM())
	}
	if p, _ := agent.Prompt("system"); p != "hi" {
		t.Errorf("system prompt = %q", p)
	}
}
