package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Dir stores one file per key under a data directory. This is the default
// local medium: the closest server-side equivalent of the browser's key/value
// storage the persisted-state layout comes from.
type Dir struct {
	path string
}

func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) file(key string) string {
	return filepath.Join(d.path, key+".json")
}

func (d *Dir) Get(key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(d.file(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read blob %v: %w", key, err)
	}
	return blob, true, nil
}

// Set writes to a temp file and renames it into place so readers never see a
// partially written blob. A crash between two Set calls can still leave
// related blobs mutually inconsistent.
func (d *Dir) Set(key string, blob []byte) error {
	tmp := d.file(key) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write blob %v: %w", key, err)
	}
	if err := os.Rename(tmp, d.file(key)); err != nil {
		return fmt.Errorf("write blob %v: %w", key, err)
	}
	return nil
}

func (d *Dir) Delete(key string) error {
	if err := os.Remove(d.file(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete blob %v: %w", key, err)
	}
	return nil
}
