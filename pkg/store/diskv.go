package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const tempDir = ".tmp"

type diskKV struct {
	d *diskv.Diskv
}

// OpenDiskv stores every key as a file directly under basePath. Writes go
// through a temp dir so a reader never sees a half written value.
func OpenDiskv(basePath string) (KV, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(filepath.Join(basePath, tempDir), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskKV{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
	})}, nil
}

func (k *diskKV) Read(key string) ([]byte, error) {
	val, err := k.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (k *diskKV) Write(key string, val []byte) error {
	return k.d.Write(key, val)
}

func (k *diskKV) Close() error { return nil }

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
