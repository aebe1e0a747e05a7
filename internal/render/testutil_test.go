package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// goldenCompare diffs got against testdata/golden/<name>.golden.
func goldenCompare(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", "golden", name+".golden")
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}

	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("golden mismatch for %s (-want +got):\n%s", name, diff)
	}
}
