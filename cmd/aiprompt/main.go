package main

import (
	"os"

	"aiprompt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
