// Package testsupport provides shared fixtures for catalogue tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fruitdata/internal/catalog"
)

// CataloguePath returns a catalogue file path inside a fresh temp directory.
func CataloguePath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "fruits.json")
}

// WriteCatalogue persists the given records to path in the on-disk format.
func WriteCatalogue(t testing.TB, path string, records []catalog.Record) {
	t.Helper()

	if records == nil {
		records = []catalog.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal catalogue: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write catalogue %s: %v", path, err)
	}
}

// ReadFile returns the raw contents of path, failing the test on error.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// SampleRecords returns a small catalogue distinct from the built-in
// defaults, handy when a test needs to tell file content from fallback.
func SampleRecords() []catalog.Record {
	return []catalog.Record{
		{Name: "Mango", Length: 10, Width: 7, Height: 6},
		{Name: "Kiwi", Length: 5, Width: 4.5, Height: 4},
	}
}
