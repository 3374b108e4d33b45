// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates that a requested setting was not found
	ErrNotFound = errors.New("setting not found")
	// ErrInvalidValue indicates that a stored value could not be parsed
	ErrInvalidValue = errors.New("invalid stored value")
)

// SettingsStore defines the interface for durable named settings. The
// feeder keeps very little local state (a single integer today), so the
// contract stays deliberately small: integers by fixed key. Losing the
// store only costs derived state; callers treat failures as non-fatal.
type SettingsStore interface {
	GetInt(ctx context.Context, key string) (int, error)
	SetInt(ctx context.Context, key string, value int) error
	Ping(ctx context.Context) error
}
