package testutil

import (
	"testing"

	"github.com/swelham/oxi/pkg/filesystem"
)

// MemoryFS returns an in-memory filesystem seeded with files, keyed by
// absolute path.
func MemoryFS(t *testing.T, files map[string]string) filesystem.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	for path, content := range files {
		if err := filesystem.WriteFileAll(fsys, path, []byte(content)); err != nil {
			t.Fatalf("Failed to seed %s: %v", path, err)
		}
	}
	return fsys
}

// ReadMemoryFile returns the content of path in fsys, failing the test if it
// cannot be read.
func ReadMemoryFile(t *testing.T, fsys filesystem.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
