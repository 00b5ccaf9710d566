package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

const (
	TasksKey = "tasks"
	ThemeKey = "darkTheme"
)

// KV is a string key-value store. Values are opaque to the store; callers
// encode whole documents under a single key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
