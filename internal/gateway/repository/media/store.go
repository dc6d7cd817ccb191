package media

import (
	"context"
	"errors"
)

// ErrNotFound marks a missing media object.
var ErrNotFound = errors.New("media not found")

// Store persists uploaded media (project cover images, avatars) keyed by the
// owning project id and a relative name.
type Store interface {
	Put(ctx context.Context, projectID, name string, content []byte) error
	Get(ctx context.Context, projectID, name string) ([]byte, error)
	List(ctx context.Context, projectID string) ([]string, error)
}
