package core

import (
	"fmt"
	"strings"
)

type ProviderID string

const (
	ProviderOpenAI     ProviderID = "openai"
	ProviderOpenRouter ProviderID = "openrouter"
	ProviderAnthropic  ProviderID = "anthropic"
)

// Providers returns every known provider in display order.
func Providers() []ProviderID {
	return []ProviderID{ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic}
}

// Title is the human name of a provider, as used in prompts and diagnostics.
func (p ProviderID) Title() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderOpenRouter:
		return "OpenRouter"
	case ProviderAnthropic:
		return "Anthropic"
	default:
		return string(p)
	}
}

// ProviderConfig is the per-provider section of the config file.
type ProviderConfig struct {
	APIKey       string `json:"api_key"` // deprecated, keys live in the credential file
	DefaultModel string `json:"default_model"`
}

// Config is the on-disk configuration. Field order is the file's key order.
type Config struct {
	OpenAI          ProviderConfig `json:"openai"`
	OpenRouter      ProviderConfig `json:"openrouter"`
	Anthropic       ProviderConfig `json:"anthropic"`
	DefaultProvider ProviderID     `json:"default_provider"`
}

// DefaultConfig returns a fresh copy of the first-run configuration.
func DefaultConfig() Config {
	return Config{
		OpenAI:          ProviderConfig{DefaultModel: "gpt-3.5-turbo"},
		OpenRouter:      ProviderConfig{DefaultModel: "google/gemini-2.0-pro-exp-02-05:free"},
		Anthropic:       ProviderConfig{DefaultModel: "claude-3-opus-20240229"},
		DefaultProvider: ProviderOpenRouter,
	}
}

// Provider returns the section for id; unknown ids yield the zero value.
func (c Config) Provider(id ProviderID) ProviderConfig {
	switch id {
	case ProviderOpenAI:
		return c.OpenAI
	case ProviderOpenRouter:
		return c.OpenRouter
	case ProviderAnthropic:
		return c.Anthropic
	default:
		return ProviderConfig{}
	}
}

// SetProvider replaces the section for id. Unknown ids are ignored.
func (c *Config) SetProvider(id ProviderID, pc ProviderConfig) {
	switch id {
	case ProviderOpenAI:
		c.OpenAI = pc
	case ProviderOpenRouter:
		c.OpenRouter = pc
	case ProviderAnthropic:
		c.Anthropic = pc
	}
}

// Credentials maps a provider to its secret API key.
type Credentials map[ProviderID]string

// DefaultCredentials returns a fresh map with an empty key for every provider.
func DefaultCredentials() Credentials {
	c := make(Credentials, 3)
	for _, p := range Providers() {
		c[p] = ""
	}
	return c
}

// Complete fills in an empty entry for any known provider missing from c.
func (c Credentials) Complete() Credentials {
	out := DefaultCredentials()
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Model is one entry of a provider's model catalog.
type Model struct {
	ID   string
	Name string
}

func (m Model) String() string {
	if m.Name == "" {
		return m.ID
	}
	return fmt.Sprintf("%s (%s)", m.ID, m.Name)
}

// Diff renders the default-model and default-provider changes between two configs.
func Diff(old, new Config) string {
	out := "Changes:\n"
	changed := false
	for _, p := range Providers() {
		o, n := old.Provider(p).DefaultModel, new.Provider(p).DefaultModel
		if o != n {
			out += "  " + p.Title() + " model: " + o + " -> " + n + "\n"
			changed = true
		}
	}
	if old.DefaultProvider != new.DefaultProvider {
		out += "  Default provider: " + string(old.DefaultProvider) + " -> " + string(new.DefaultProvider) + "\n"
		changed = true
	}
	if !changed {
		out += "  (no change)\n"
	}
	return out
}

// ProviderNames joins the provider ids with sep, e.g. "openai/openrouter/anthropic".
func ProviderNames(sep string) string {
	names := make([]string, 0, 3)
	for _, p := range Providers() {
		names = append(names, string(p))
	}
	return strings.Join(names, sep)
}
