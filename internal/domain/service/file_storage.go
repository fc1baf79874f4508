package service

import (
	"context"
	"io"
)

// FileStorage stores uploaded files in an object store.
type FileStorage interface {
	// Save writes the content under key and returns the public path of the object.
	Save(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// Delete removes the object stored under key. A missing object is not an error.
	Delete(ctx context.Context, key string) error
}
