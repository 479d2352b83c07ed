// Package blobstore is a string key/value store for per-day tracker snapshots.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown blob store driver")

// Store is the persistence medium. Values are opaque strings.
type Store interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Keys returns every key in ascending order.
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Config selects and configures a driver.
type Config struct {
	Driver     string
	Dir        string
	SQLitePath string
	// CacheSize > 0 wraps the driver in an LRU read cache.
	CacheSize int
	CacheTTL  time.Duration
}

// Open builds the Store described by cfg.
func Open(cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Driver {
	case DriverMemory, "":
		s = NewMemory()
	case DriverFile:
		s, err = NewFile(cfg.Dir)
	case DriverSQLite:
		s, err = NewSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheSize > 0 && cfg.Driver != DriverMemory && cfg.Driver != "" {
		s = NewCached(s, cfg.CacheSize, cfg.CacheTTL)
	}
	return s, nil
}
