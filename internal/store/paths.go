package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	configFileName = ".ai_prompt_config.json"
	keysFileName   = ".ai_prompt_keys.json"
)

func userHome() string {
	h, _ := os.UserHomeDir()
	if h == "" && runtime.GOOS == "windows" {
		h = os.Getenv("USERPROFILE")
	}
	if h == "" {
		h = "."
	}
	return h
}

// DefaultConfigPath is ~/.ai_prompt_config.json.
func DefaultConfigPath() string {
	return filepath.Join(userHome(), configFileName)
}

// DefaultKeysPath is ~/.ai_prompt_keys.json.
func DefaultKeysPath() string {
	return filepath.Join(userHome(), keysFileName)
}
