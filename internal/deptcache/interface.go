package deptcache

import (
	"context"

	"prod-tracker/internal/model"
)

// Store is the normalized client cache holding department records by key.
// Read reports ok=false when the key is not cached.
type Store interface {
	Read(ctx context.Context, key string) (dept model.Dept, ok bool, err error)
	Write(ctx context.Context, key string, dept model.Dept) error
}
