package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// AtomicWrite writes content to a temp file next to path and renames it into place.
// Missing parent directories are created.
func AtomicWrite(path string, content []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	_ = tmp.Sync()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Chmod(name, mode); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		// Windows refuses to rename over an existing or briefly locked file.
		if runtime.GOOS == "windows" {
			last := err
			for i := 0; i < 5; i++ {
				if _, statErr := os.Stat(path); statErr == nil {
					_ = os.Remove(path)
				}
				if last = os.Rename(name, path); last == nil {
					return nil
				}
				time.Sleep(50 * time.Millisecond)
			}
			_ = os.Remove(name)
			return last
		}
		_ = os.Remove(name)
		return err
	}
	return nil
}
