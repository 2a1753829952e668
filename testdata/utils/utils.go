// Package utils holds fixtures shared by tests across packages.
package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func Ptr[T any](v T) *T {
	return &v
}

// SectionFixture describes one section directory. A nil Metadata or an
// empty Content leaves the corresponding file out.
type SectionFixture struct {
	Name     string
	Metadata map[string]any
	Content  string
}

// WriteChapter creates root/slug with a metadata.json and one
// subdirectory per section, returning the chapter directory.
func WriteChapter(t testing.TB, root, slug string, metadata map[string]any, sections ...SectionFixture) string {
	t.Helper()

	dir := filepath.Join(root, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create chapter dir: %v", err)
	}
	if metadata != nil {
		writeJSON(t, filepath.Join(dir, "metadata.json"), metadata)
	}

	for _, s := range sections {
		secDir := filepath.Join(dir, s.Name)
		if err := os.MkdirAll(secDir, 0o755); err != nil {
			t.Fatalf("create section dir: %v", err)
		}
		if s.Metadata != nil {
			writeJSON(t, filepath.Join(secDir, "metadata.json"), s.Metadata)
		}
		if s.Content != "" {
			if err := os.WriteFile(filepath.Join(secDir, "content.md"), []byte(s.Content), 0o644); err != nil {
				t.Fatalf("write content: %v", err)
			}
		}
	}

	return dir
}

func writeJSON(t testing.TB, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
