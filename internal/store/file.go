package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a directory. Writes go to a temp
// file that is renamed over the target, so readers never see a partial payload.
type FileStore struct {
	dir string
	ext string
}

// NewFileStore creates dir if needed and returns a store writing files named
// <key>.<ext> inside it.
func NewFileStore(dir, ext string) (*FileStore, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "json"
	}
	return &FileStore{dir: dir, ext: ext}, nil
}

// Dir returns the directory holding the payload files.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file that holds key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+"."+s.ext)
}

// KeyFor maps a payload file path back to its key. Temp files and files with
// another extension are not payloads.
func (s *FileStore) KeyFor(path string) (string, bool) {
	base := filepath.Base(path)
	key, ok := strings.CutSuffix(base, "."+s.ext)
	if !ok || validateKey(key) != nil {
		return "", false
	}
	return key, true
}

func (s *FileStore) Write(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	path := s.Path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("store: writing temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store: renaming file for %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: reading %q: %w", key, err)
	}
	return data, true, nil
}

func (s *FileStore) Close() error { return nil }
