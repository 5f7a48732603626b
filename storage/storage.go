// Package storage persists the full task list as a single serialized value.
package storage

import (
	"context"

	"mydaytasks/model"
)

// Store loads and saves the whole task list at once.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
	Close() error
}
