package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes content to dir/name and returns the path.
func WriteFixture(tb testing.TB, dir, name, content string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// WriteSizedFixture creates dir/name as a sparse file of exactly size bytes.
func WriteSizedFixture(tb testing.TB, dir, name string, size int64) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create fixture %s: %v", name, err)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		tb.Fatalf("size fixture %s: %v", name, err)
	}
	return path
}
