package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aiprompt/internal/app"
	"aiprompt/internal/core"
	"aiprompt/internal/logging"
	"aiprompt/internal/providers"
	"aiprompt/internal/setup"
	"aiprompt/internal/store"
	"aiprompt/internal/ui"
	"aiprompt/internal/util"
)

func run(cmd *cobra.Command, v *viper.Viper, env *Env, args []string) error {
	log := logging.New(env.Stderr, v.GetBool("debug"))

	configs := store.NewConfigStore(firstNonEmpty(env.ConfigPath, v.GetString("config")))
	keyStore := store.NewCredentialStore(firstNonEmpty(env.KeysPath, v.GetString("keys")))
	log.Debug("using files", "config", configs.Path, "keys", keyStore.Path)

	cfg, created, err := configs.Load()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	if created {
		fmt.Fprintf(env.Stderr, "Created default configuration at %s\n", configs.Path)
	}

	if doSetup, _ := cmd.Flags().GetBool("setup"); doSetup {
		w := &setup.Wizard{Configs: configs, Keys: keyStore, Prompter: env.prompter(), Out: env.Stdout}
		if err := w.Run(); err != nil {
			return &ExitError{Code: 1, Err: err}
		}
		return nil
	}

	provider := cfg.DefaultProvider
	if override := v.GetString("provider"); override != "" {
		// Command line choices match exactly, unlike setup answers.
		p := core.ProviderID(override)
		if !p.Known() {
			return fmt.Errorf("argument -p/--provider: invalid choice: '%s' (choose from %s)", override, core.ProviderNames(", "))
		}
		provider = p
	}
	if !provider.Known() {
		fmt.Fprintf(env.Stderr, "Unknown provider: %s\n", provider)
		return nil
	}

	keys := keyStore.Load()
	if keys[provider] == "" {
		fmt.Fprintf(env.Stderr, "No API key configured for %s. Run with --setup to configure.\n", provider)
		return &ExitError{Code: 1, Err: fmt.Errorf("%w for %s", ErrMissingCredential, provider), Reported: true}
	}

	prov := env.newProvider(provider, providers.Options{Logger: log})
	ctx := cmd.Context()

	if list, _ := cmd.Flags().GetBool("list-models"); list {
		app.ListModels(ctx, prov, listingKey(cfg, keys, provider), env.Stdout, env.Stderr)
		return nil
	}

	file, _ := cmd.Flags().GetString("file")
	src := app.PromptSource{File: file, Stdin: env.Stdin, StdinIsTerminal: ui.IsTerminal(env.Stdin)}
	if len(args) > 0 {
		src.Literal = args[0]
	}
	prompt, err := app.ResolvePrompt(src)
	if errors.Is(err, app.ErrNoPrompt) {
		return cmd.Help()
	}
	if err != nil {
		if src.Literal == "" && file != "" {
			fmt.Fprintf(env.Stderr, "Error reading file: %v\n", err)
		} else {
			fmt.Fprintf(env.Stderr, "Error reading input: %v\n", err)
		}
		return nil
	}

	model := v.GetString("model")
	if model == "" {
		model = cfg.Provider(provider).DefaultModel
	}
	log.Debug("sending prompt", "provider", provider, "model", model, "key", util.Mask(keys[provider]), "bytes", len(prompt))

	if text, ok := app.Query(ctx, prov, prompt, model, keys[provider], env.Stderr); ok && text != "" {
		fmt.Fprintln(env.Stdout, text)
	}
	return nil
}

// listingKey prefers the legacy api_key field of the config file, which is
// what model listing historically read, and otherwise uses the key file.
func listingKey(cfg core.Config, keys core.Credentials, p core.ProviderID) string {
	if k := cfg.Provider(p).APIKey; k != "" {
		return k
	}
	return keys[p]
}

func firstNonEmpty(vals ...string) string {
	for _, s := range vals {
		if s != "" {
			return s
		}
	}
	return ""
}
