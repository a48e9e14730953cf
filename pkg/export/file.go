package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile replaces path with data atomically: the bytes go to a
// temporary file in the same directory which is then renamed over path.
// A failed write never leaves a partial file at path. It returns the
// number of bytes written.
func WriteFile(path string, data []byte) (int, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("export: create temp for %s: %v: %w", path, err, ErrIOFailure)
	}
	tmpName := tmp.Name()

	fail := func(step string, err error) (int, error) {
		tmp.Close()
		os.Remove(tmpName)
		return 0, fmt.Errorf("export: %s %s: %v: %w", step, path, err, ErrIOFailure)
	}

	n, err := tmp.Write(data)
	if err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("export: close %s: %v: %w", path, err, ErrIOFailure)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("export: chmod %s: %v: %w", path, err, ErrIOFailure)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("export: rename %s: %v: %w", path, err, ErrIOFailure)
	}
	return n, nil
}
