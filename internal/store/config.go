package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"aiprompt/internal/core"
	"aiprompt/internal/fsx"
)

// ErrConfigCorrupt is returned when the config file exists but is not valid JSON.
var ErrConfigCorrupt = errors.New("config file is corrupt")

// ConfigStore reads and writes the configuration file at Path.
type ConfigStore struct {
	Path string
}

// NewConfigStore returns a store for path, or the default location when path is empty.
func NewConfigStore(path string) *ConfigStore {
	if path == "" {
		path = DefaultConfigPath()
	}
	return &ConfigStore{Path: path}
}

// Load parses the config file. When the file does not exist the default
// configuration is written out and returned with created set.
func (s *ConfigStore) Load() (cfg core.Config, created bool, err error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return core.Config{}, false, err
		}
		cfg = core.DefaultConfig()
		if err := s.Save(cfg); err != nil {
			return core.Config{}, false, fmt.Errorf("create default config: %w", err)
		}
		return cfg, true, nil
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return core.Config{}, false, fmt.Errorf("%w: %s: %v", ErrConfigCorrupt, s.Path, err)
	}
	return cfg, false, nil
}

// Save overwrites the config file with cfg.
func (s *ConfigStore) Save(cfg core.Config) error {
	data, err := json.MarshalIndent(&cfg, "", "  ")
	if err != nil {
		return err
	}
	return fsx.AtomicWrite(s.Path, data, fs.FileMode(0o644))
}
