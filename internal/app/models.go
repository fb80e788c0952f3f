package app

import (
	"context"
	"fmt"
	"io"

	"aiprompt/internal/providers"
)

// ListModels prints the models p offers, one "  - <model>" line each.
// Errors are reported on stderr.
func ListModels(ctx context.Context, p providers.Provider, apiKey string, stdout, stderr io.Writer) {
	models, err := p.Models(ctx, apiKey)
	if err != nil {
		fmt.Fprintf(stderr, "Error listing models: %v\n", err)
		reportBody(stderr, err)
		return
	}
	fmt.Fprintf(stdout, "\nAvailable %s models:\n", p.ID().Title())
	for _, m := range models {
		fmt.Fprintf(stdout, "  - %s\n", m)
	}
}
