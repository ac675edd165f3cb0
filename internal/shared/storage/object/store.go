package object

import (
	"context"
	"io"
)

// Store defines the contract for persisting generated artifacts.
type Store interface {
	// UploadFile writes the reader's bytes under key with the given content type.
	UploadFile(ctx context.Context, key string, contentType string, r io.Reader) error
	// UploadJSON marshals v and writes it under key as application/json.
	UploadJSON(ctx context.Context, key string, v any) error
	// PublicURL returns a retrievable URL (or path) for key.
	PublicURL(key string) string
	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error
	// Name identifies the backend for metadata and logging.
	Name() string
	// IsAbsoluteURL reports whether PublicURL returns a fully qualified URL.
	IsAbsoluteURL() bool
}
