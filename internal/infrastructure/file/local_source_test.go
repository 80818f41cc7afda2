package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalSourceOpensFileBelowBaseDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte(`[]`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rc, err := NewLocalSource(dir).Open(context.Background(), "users.json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != "[]" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestLocalSourceConfinesTraversal(t *testing.T) {
	parent := t.TempDir()
	base := filepath.Join(parent, "imports")
	if err := os.Mkdir(base, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(parent, "secret.json"), []byte(`[]`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := NewLocalSource(base).Open(context.Background(), "../secret.json")
	if err == nil {
		t.Fatal("expected traversal to stay inside base dir")
	}
}

func TestLocalSourceHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLocalSource(t.TempDir()).Open(ctx, "users.json"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLocalSourceRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "batch.json"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := NewLocalSource(dir).Open(context.Background(), "batch.json")
	if !errors.Is(err, ErrNotRegularFile) {
		t.Fatalf("expected ErrNotRegularFile, got %v", err)
	}
}
