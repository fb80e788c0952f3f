package app

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoPrompt means none of the prompt sources produced any text.
var ErrNoPrompt = errors.New("no prompt given")

// PromptSource lists where a prompt may come from, highest priority first.
type PromptSource struct {
	Literal string
	File    string
	// Stdin is read only when StdinIsTerminal is false.
	Stdin           io.Reader
	StdinIsTerminal bool
}

// ResolvePrompt returns the literal, else the file contents, else stdin.
// A file that cannot be read is an error; it does not fall through to stdin.
func ResolvePrompt(src PromptSource) (string, error) {
	if src.Literal != "" {
		return src.Literal, nil
	}
	if src.File != "" {
		b, err := os.ReadFile(src.File)
		if err != nil {
			return "", fmt.Errorf("read prompt file: %w", err)
		}
		if len(b) == 0 {
			return "", ErrNoPrompt
		}
		return string(b), nil
	}
	if src.Stdin != nil && !src.StdinIsTerminal {
		b, err := io.ReadAll(src.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if len(b) == 0 {
			return "", ErrNoPrompt
		}
		return string(b), nil
	}
	return "", ErrNoPrompt
}
