// Package cli is the aiprompt command line: it resolves provider, model and
// prompt for one invocation and routes to setup, model listing or a query.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aiprompt/internal/core"
	"aiprompt/internal/providers"
	"aiprompt/internal/setup"
	"aiprompt/internal/ui"
	"aiprompt/internal/version"
)

// ErrMissingCredential is the cause of the exit status 1 when the resolved
// provider has no stored API key.
var ErrMissingCredential = errors.New("no API key configured")

// ExitError ends the process with Code. Err is printed unless Reported is
// set, which means the user has already seen a message for it.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Env is everything an invocation touches outside the process.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ConfigPath and KeysPath override AIPROMPT_CONFIG / AIPROMPT_KEYS and the
	// files in the home directory.
	ConfigPath string
	KeysPath   string

	// NewProvider defaults to providers.NewProvider.
	NewProvider func(core.ProviderID, providers.Options) providers.Provider
	// Prompter defaults to a bubbletea form on a terminal, plain lines otherwise.
	Prompter setup.Prompter
}

func (e *Env) newProvider(id core.ProviderID, opts providers.Options) providers.Provider {
	if e.NewProvider != nil {
		return e.NewProvider(id, opts)
	}
	return providers.NewProvider(id, opts)
}

func (e *Env) prompter() setup.Prompter {
	if e.Prompter != nil {
		return e.Prompter
	}
	if ui.IsTerminal(e.Stdin) && ui.IsTerminal(e.Stdout) {
		return &ui.TeaPrompter{In: e.Stdin, Out: e.Stdout}
	}
	return ui.NewLinePrompter(e.Stdin, e.Stdout)
}

// NewRootCommand builds the aiprompt command bound to env.
func NewRootCommand(env Env) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("AIPROMPT")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           version.Name + " [prompt]",
		Short:         "Query AI models from the terminal",
		Long:          "Send a prompt to OpenAI, OpenRouter or Anthropic and print the reply.\nThe prompt is taken from the argument, then --file, then standard input.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, &env, args)
		},
	}
	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	f := cmd.Flags()
	f.StringP("model", "m", "", "Model to use (defaults to provider's configured default)")
	f.StringP("provider", "p", "", "Specify the provider ("+core.ProviderNames(", ")+")")
	f.Bool("setup", false, "Run the configuration setup")
	f.Bool("list-models", false, "List available models")
	f.StringP("file", "f", "", "Read prompt from file")
	f.Bool("debug", false, "Log file locations and requests to stderr")

	_ = v.BindPFlag("model", f.Lookup("model"))
	_ = v.BindPFlag("provider", f.Lookup("provider"))
	_ = v.BindPFlag("debug", f.Lookup("debug"))
	return cmd
}

// Run executes one invocation and returns the process exit status.
func Run(args []string, env Env) int {
	cmd := NewRootCommand(env)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil && !exitErr.Reported {
			fmt.Fprintf(env.Stderr, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	fmt.Fprintf(env.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	return 2
}

// Execute runs the command against the real process environment.
func Execute() int {
	return Run(os.Args[1:], Env{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
}
