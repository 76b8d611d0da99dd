// Package testsupport provides fixtures for tests that need populated queue
// directories.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// QueueDir creates a fresh queue directory under t.TempDir and returns its
// path.
func QueueDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "queue")
	if err := os.Mkdir(dir, 0o777); err != nil {
		t.Fatalf("create queue dir: %v", err)
	}
	return dir
}

// WriteNumbered creates one empty queue file per number using the %08d
// pattern and the given extension ("" for none).
func WriteNumbered(t *testing.T, dir, ext string, nums ...int) {
	t.Helper()
	for _, num := range nums {
		name := fmt.Sprintf("%08d", num)
		if ext != "" {
			name += "." + ext
		}
		WriteFile(t, filepath.Join(dir, name), nil)
	}
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		t.Fatalf("create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
