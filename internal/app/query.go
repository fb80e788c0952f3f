// Package app holds the per-invocation operations the command line drives:
// sending a prompt, listing models and resolving where the prompt comes from.
package app

import (
	"context"
	"fmt"
	"io"

	"aiprompt/internal/providers"
)

// Query sends prompt through p. Failures of any kind are reported on stderr
// and turn into ok == false; Query itself never fails.
func Query(ctx context.Context, p providers.Provider, prompt, model, apiKey string, stderr io.Writer) (text string, ok bool) {
	text, err := p.Complete(ctx, prompt, model, apiKey)
	if err != nil {
		fmt.Fprintf(stderr, "Error querying %s: %v\n", p.ID().Title(), err)
		reportBody(stderr, err)
		return "", false
	}
	return text, true
}

func reportBody(w io.Writer, err error) {
	if body, ok := providers.ResponseBody(err); ok {
		fmt.Fprintf(w, "Response: %s\n", body)
	}
}
