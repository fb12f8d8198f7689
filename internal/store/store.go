// Package store provides a generic keyed blob store for serialized catalogs.
//
// A Store maps string keys to opaque payloads. Put and Get layer a Codec on
// top so differently shaped values (a single preset aggregate under one key,
// a title-to-document map under another) share the same backend. Backends:
//
//   - memory: in-process map, for tests and ephemeral sessions
//   - file:   one file per key in a directory, written atomically
//   - sqlite: a single table in a local SQLite database (WAL mode)
//   - bolt:   a single bucket in a BoltDB file
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Well-known keys.
const (
	KeyPresets      = "presets"
	KeyCustomLevels = "customLevels"
	KeyPresetLevels = "levels"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

var (
	// ErrInvalidKey is returned for empty keys or keys containing path elements.
	ErrInvalidKey = errors.New("store: invalid key")
	// ErrUnknownBackend is returned by Open for an unrecognized backend name.
	ErrUnknownBackend = errors.New("store: unknown backend")
	// ErrCorrupt wraps payloads that cannot be decoded by the codec.
	ErrCorrupt = errors.New("store: corrupt payload")
)

// Store is a durable association from keys to payloads. Write overwrites any
// previous payload; Read reports ok=false for keys that were never written.
type Store interface {
	Write(ctx context.Context, key string, payload []byte) error
	Read(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Close() error
}

// Put encodes v with c and writes it under key.
func Put[T any](ctx context.Context, s Store, c Codec, key string, v T) error {
	data, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %q as %s: %w", key, c.Name(), err)
	}
	return s.Write(ctx, key, data)
}

// Get reads key and decodes it into a T. A key that was never written
// returns the zero T with ok=false and no error.
func Get[T any](ctx context.Context, s Store, c Codec, key string) (T, bool, error) {
	var v T
	data, ok, err := s.Read(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := c.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("%w: %q as %s: %v", ErrCorrupt, key, c.Name(), err)
	}
	return v, true, nil
}

// Options selects and configures a backend for Open.
type Options struct {
	Backend string
	// Path is the directory holding the backend's files. Ignored by memory.
	Path string
	// Codec determines the file extension of the file backend.
	Codec Codec
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	codec := opts.Codec
	if codec == nil {
		codec = JSON()
	}
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(opts.Path, codec.Ext())
	case BackendSQLite:
		if err := ensureDir(opts.Path); err != nil {
			return nil, err
		}
		return NewSQLiteStore(ctx, filepath.Join(opts.Path, "store.db"))
	case BackendBolt:
		if err := ensureDir(opts.Path); err != nil {
			return nil, err
		}
		return NewBoltStore(filepath.Join(opts.Path, "store.bolt"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// Backends lists the names accepted by Open.
func Backends() []string {
	return []string{BackendMemory, BackendFile, BackendSQLite, BackendBolt}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("store: path is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: creating directory %s: %w", dir, err)
	}
	return nil
}
