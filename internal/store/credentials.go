package store

import (
	"encoding/json"
	"io/fs"
	"os"

	"aiprompt/internal/core"
	"aiprompt/internal/fsx"
)

// CredentialStore reads and writes the API key file at Path.
// It is kept apart from the config so the config can be shared without secrets.
type CredentialStore struct {
	Path string
}

// NewCredentialStore returns a store for path, or the default location when path is empty.
func NewCredentialStore(path string) *CredentialStore {
	if path == "" {
		path = DefaultKeysPath()
	}
	return &CredentialStore{Path: path}
}

// Load never fails: a missing or unreadable file means no keys have been set yet.
func (s *CredentialStore) Load() core.Credentials {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return core.DefaultCredentials()
	}
	var keys core.Credentials
	if err := json.Unmarshal(b, &keys); err != nil {
		return core.DefaultCredentials()
	}
	return keys.Complete()
}

// Save writes an entry for every known provider, even ones that did not change.
func (s *CredentialStore) Save(keys core.Credentials) error {
	data, err := json.MarshalIndent(keys.Complete(), "", "  ")
	if err != nil {
		return err
	}
	return fsx.AtomicWrite(s.Path, data, fs.FileMode(0o600))
}
