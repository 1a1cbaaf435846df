package system

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFileStore reads and rewrites small text files. Writes go through a
// temporary file in the same directory followed by a rename, so a failure
// never leaves a partially written file at the target path.
type AtomicFileStore struct{}

// ReadText returns the full content of the file at path.
func (AtomicFileStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - paths come from config or well-known locations
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText replaces the content of the file at path atomically.
func (AtomicFileStore) WriteText(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	// Carry over the permissions of an existing target.
	if fi, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, fi.Mode())
	} else {
		_ = os.Chmod(tmpName, 0o644)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a file exists at path.
func (AtomicFileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
