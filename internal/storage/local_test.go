package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalUploader_WritesFileAndBuildsURL(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir, "http://localhost:8080/")
	if err != nil {
		t.Fatalf("new local uploader: %v", err)
	}

	content := []byte("fake image bytes")
	url, err := u.Upload(context.Background(), "uploads/123_abc.png", bytes.NewReader(content), int64(len(content)), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "http://localhost:8080/uploads/123_abc.png" {
		t.Fatalf("unexpected url %q", url)
	}

	written, err := os.ReadFile(filepath.Join(dir, "123_abc.png"))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if !bytes.Equal(written, content) {
		t.Fatal("written bytes differ from uploaded content")
	}
}

func TestLocalUploader_RequiresBaseDir(t *testing.T) {
	if _, err := NewLocalUploader("  ", "http://localhost"); err == nil {
		t.Fatal("expected error for empty base dir")
	}
}

func TestNewObjectKey_KeepsExtensionAndAvoidsCollisions(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		key := NewObjectKey("logo.PNG")
		if !strings.HasPrefix(key, "uploads/") || !strings.HasSuffix(key, ".png") {
			t.Fatalf("unexpected key %q", key)
		}
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
}

func TestNewObjectKey_DefaultsExtension(t *testing.T) {
	if key := NewObjectKey("noext"); !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("expected .jpg default, got %q", key)
	}
}
