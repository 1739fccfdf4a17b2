// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderFactory builds an [LLM] from its serializable spec.
type ProviderFactory func(spec LLMSpec) (LLM, error)

var (
	providersMu sync.RWMutex
	providers   = map[string]ProviderFactory{}
)

// RegisterProvider adds a provider to the global registry.
// Typically called from init() in provider packages:
//
//	func init() {
//	    claire.RegisterProvider("openai", newFromSpec)
//	}
func RegisterProvider(name string, f ProviderFactory) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers[name] = f
}

// NewLLM resolves spec.Provider in the registry and builds the [LLM].
func NewLLM(spec LLMSpec) (LLM, error) {
	if err := validate().Struct(&spec); err != nil {
		return nil, fmt.Errorf("%w: llm spec: %v", ErrConfig, err)
	}
	providersMu.RLock()
	f, ok := providers[spec.Provider]
	providersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (forgot to import the provider package?)", ErrUnknownProvider, spec.Provider)
	}
	return f(spec)
}

// Providers returns the sorted names of all registered providers.
func Providers() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
