package local

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"portfolio-backend/internal/shared/storage/object"
)

// Store implements object.Store using the local filesystem. Objects are
// retrievable through the router's /files handler.
type Store struct {
	baseDir string
	baseURL string
}

// New creates a local object store rooted at baseDir. baseURL, when set,
// prefixes public URLs so they resolve from other hosts.
func New(baseDir, baseURL string) *Store {
	return &Store{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// UploadFile writes the reader to disk at the given storage key.
func (s *Store) UploadFile(ctx context.Context, key string, contentType string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean, err := cleanKey(key)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.baseDir, clean)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	_ = contentType
	return nil
}

// UploadJSON marshals v and writes it at the given storage key.
func (s *Store) UploadJSON(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return s.UploadFile(ctx, key, "application/json", strings.NewReader(string(data)))
}

// PublicURL returns the /files path for key, prefixed with the base URL if set.
func (s *Store) PublicURL(key string) string {
	return s.baseURL + "/files/" + strings.TrimLeft(key, "/")
}

// Delete removes the object at key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, err := cleanKey(key)
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.baseDir, clean))
}

// Name identifies the backend.
func (s *Store) Name() string { return "local" }

// IsAbsoluteURL reports whether public URLs are fully qualified.
func (s *Store) IsAbsoluteURL() bool { return s.baseURL != "" }

// Open reads back a stored object; used by the /files handler and tests.
func (s *Store) Open(key string) (io.ReadCloser, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.baseDir, clean))
}

// BaseDir exposes the root directory so the router can serve it.
func (s *Store) BaseDir() string { return s.baseDir }

func cleanKey(key string) (string, error) {
	clean := filepath.Clean(key)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key")
	}
	return clean, nil
}

var _ object.Store = (*Store)(nil)
