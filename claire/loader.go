// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadAgentConfigs reads an agent YAML file. A .env file next to it is loaded
// first (existing environment variables win), then ${VAR} references in
// the name and llm block are expanded.
//
// Example file:
//
//	name: assistant
//	description: Answers questions.
//	llm:
//	  provider: openai
//	  model: gpt-4o-mini
//	  api_key_env: OPENAI_API_KEY
//	  gen_args:
//	    temperature: 0.2
//	prompts:
//	  system: You are helpful.
func LoadAgentConfigs(path string) (*AgentConfigs, error) {
	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	return decodeAgentConfigs(v)
}

// ParseAgentConfigs reads an agent configuration in YAML form from r.
func ParseAgentConfigs(r io.Reader) (*AgentConfigs, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("%w: parse agent config: %v", ErrConfig, err)
	}
	return decodeAgentConfigs(v)
}

func decodeAgentConfigs(v *viper.Viper) (*AgentConfigs, error) {
	var cfg AgentConfigs
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode agent config: %v", ErrConfig, err)
	}
	cfg.expandEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AgentConfigs) expandEnv() {
	c.Name = os.ExpandEnv(c.Name)
	if c.LLM != nil {
		c.LLM.Provider = os.ExpandEnv(c.LLM.Provider)
		c.LLM.Model = os.ExpandEnv(c.LLM.Model)
		c.LLM.BaseURL = os.ExpandEnv(c.LLM.BaseURL)
		c.LLM.APIVersion = os.ExpandEnv(c.LLM.APIVersion)
	}
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: load %s: %v", ErrConfig, path, err)
	}
	return nil
}
