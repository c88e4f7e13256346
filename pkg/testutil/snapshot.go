package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/syndromatic/syndock-migrate/pkg/types"
)

// SnapshotTree returns every regular file under root keyed by its
// slash-separated relative path. Directories appear with a trailing slash
// and empty content. A missing root yields an empty snapshot.
func SnapshotTree(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()

	snapshot := make(map[string]string)
	if _, err := fsys.Stat(root); os.IsNotExist(err) {
		return snapshot
	}
	walk(t, fsys, root, "", snapshot)
	return snapshot
}

func walk(t *testing.T, fsys types.FS, root, rel string, snapshot map[string]string) {
	t.Helper()

	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", filepath.Join(root, rel), err)
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		if entry.IsDir() {
			snapshot[filepath.ToSlash(childRel)+"/"] = ""
			walk(t, fsys, root, childRel, snapshot)
			continue
		}
		data, err := fsys.ReadFile(filepath.Join(root, childRel))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", childRel, err)
		}
		snapshot[filepath.ToSlash(childRel)] = string(data)
	}
}
