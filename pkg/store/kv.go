package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by KV.Read when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// ErrUnknownDriver is returned by OpenKV for a driver name it does not know.
var ErrUnknownDriver = errors.New("store: unknown driver")

// KV is the durable key-value storage the list is persisted to.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Close() error
}

// OpenKV opens the backend selected by cfg.Driver() under cfg.BasePath().
func OpenKV(ctx context.Context, cfg Config) (KV, error) {
	switch cfg.Driver() {
	case "", DriverDiskv:
		return OpenDiskv(cfg.BasePath())
	case DriverSQLite:
		return OpenSQLite(ctx, cfg.BasePath())
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, cfg.Driver())
	}
}
