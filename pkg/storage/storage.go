// Package storage writes files so that readers see either the old or the new content.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteWith streams content produced by fn into path through a temporary
// file in the same directory, then renames it into place.
func WriteWith(path string, perm os.FileMode, fn func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op after a successful rename

	if err := fn(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("error setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// SaveFile atomically replaces path with content.
func SaveFile(path string, content []byte, perm os.FileMode) error {
	return WriteWith(path, perm, func(w io.Writer) error {
		_, err := w.Write(content)
		return err
	})
}
