// Package setup implements the interactive first-run configuration.
package setup

import (
	"fmt"
	"io"
	"strings"

	"aiprompt/internal/core"
	"aiprompt/internal/store"
	"aiprompt/internal/ui"
	"aiprompt/internal/util"
)

// Prompter asks the user for values. Secret must not echo what is typed.
type Prompter interface {
	Secret(label string) (string, error)
	Line(label, current string) (string, error)
}

// Wizard collects API keys, default models and the default provider.
type Wizard struct {
	Configs  *store.ConfigStore
	Keys     *store.CredentialStore
	Prompter Prompter
	Out      io.Writer
}

// Run walks through every question and persists both stores. Keys are saved
// before the model questions are asked.
func (w *Wizard) Run() error {
	cfg, _, err := w.Configs.Load()
	if err != nil {
		return err
	}
	old := cfg

	fmt.Fprintln(w.Out, ui.Heading("AI Prompt Configuration Setup"))

	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, ui.Heading("API Key Configuration"))
	keys := w.Keys.Load()
	for _, p := range core.Providers() {
		if keys[p] != "" {
			fmt.Fprintln(w.Out, ui.Muted(fmt.Sprintf("%s API key: %s (already set)", p, util.Mask(keys[p]))))
			continue
		}
		key, err := w.Prompter.Secret(fmt.Sprintf("Enter %s API key: ", p))
		if err != nil {
			return err
		}
		keys[p] = strings.TrimSpace(key)
	}
	if err := w.Keys.Save(keys); err != nil {
		return fmt.Errorf("save keys: %w", err)
	}

	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, ui.Heading("Model Configuration"))
	for _, p := range core.Providers() {
		pc := cfg.Provider(p)
		v, err := w.Prompter.Line(fmt.Sprintf("Default %s Model [%s]: ", p.Title(), pc.DefaultModel), pc.DefaultModel)
		if err != nil {
			return err
		}
		if v = strings.TrimSpace(v); v != "" {
			pc.DefaultModel = v
			cfg.SetProvider(p, pc)
		}
	}

	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, "Default Provider:")
	v, err := w.Prompter.Line(fmt.Sprintf("Default Provider (%s) [%s]: ", core.ProviderNames("/"), cfg.DefaultProvider), string(cfg.DefaultProvider))
	if err != nil {
		return err
	}
	if v = strings.TrimSpace(v); v != "" {
		if p, err := core.ParseProvider(v); err == nil {
			cfg.DefaultProvider = p
		} else {
			fmt.Fprintln(w.Out, ui.Warn(fmt.Sprintf("Invalid provider '%s'. Using '%s' as default.", v, cfg.DefaultProvider)))
		}
	}

	if err := w.Configs.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, ui.OK("Configuration saved to "+w.Configs.Path))
	fmt.Fprint(w.Out, core.Diff(old, cfg))
	return nil
}
