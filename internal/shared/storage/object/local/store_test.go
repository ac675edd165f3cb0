package local

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadFileAndOpen(t *testing.T) {
	store := New(t.TempDir(), "")
	ctx := context.Background()

	key := "portfolios/abc/index.html"
	if err := store.UploadFile(ctx, key, "text/html", strings.NewReader("<html></html>")); err != nil {
		t.Fatalf("upload: %v", err)
	}

	rc, err := store.Open(key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestUploadJSON(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "")
	ctx := context.Background()

	payload := map[string]any{"id": "abc", "template": "dark-modern"}
	if err := store.UploadJSON(ctx, "portfolios/abc/metadata.json", payload); err != nil {
		t.Fatalf("upload json: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "portfolios", "abc", "metadata.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["id"] != "abc" || got["template"] != "dark-modern" {
		t.Fatalf("unexpected payload %v", got)
	}
}

func TestPublicURL(t *testing.T) {
	bare := New(t.TempDir(), "")
	if got := bare.PublicURL("portfolios/abc/index.html"); got != "/files/portfolios/abc/index.html" {
		t.Fatalf("unexpected relative url %q", got)
	}
	if bare.IsAbsoluteURL() {
		t.Fatalf("store without base url must report relative urls")
	}

	prefixed := New(t.TempDir(), "https://example.com/")
	if got := prefixed.PublicURL("portfolios/abc/index.html"); got != "https://example.com/files/portfolios/abc/index.html" {
		t.Fatalf("unexpected absolute url %q", got)
	}
	if !prefixed.IsAbsoluteURL() {
		t.Fatalf("store with base url must report absolute urls")
	}
}

func TestTraversalKeysRejected(t *testing.T) {
	store := New(t.TempDir(), "")
	ctx := context.Background()

	if err := store.UploadFile(ctx, "../escape.html", "text/html", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if err := store.UploadFile(ctx, "/abs/escape.html", "text/html", strings.NewReader("x")); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "")
	ctx := context.Background()

	if err := store.UploadFile(ctx, "a/b.txt", "text/plain", strings.NewReader("x")); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := store.Delete(ctx, "a/b.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a", "b.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err %v", err)
	}
}
