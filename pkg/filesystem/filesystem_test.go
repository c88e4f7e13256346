package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndromatic/syndock-migrate/pkg/filesystem"
	"github.com/syndromatic/syndock-migrate/pkg/types"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "syndock", "layouts")
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	target := filepath.Join(dir, "dock.layout.syndock")
	require.NoError(t, fsys.WriteFile(target, []byte("first"), 0644))
	require.NoError(t, fsys.WriteFile(target, []byte("second"), 0644))

	data, err := fsys.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := fsys.Stat(target)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len("second")), info.Size())

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dock.layout.syndock", entries[0].Name())

	_, err = fsys.ReadFile(dir)
	assert.Error(t, err, "reading a directory should fail")

	_, err = fsys.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS(t *testing.T) {
	exerciseFS(t, filesystem.NewOS(), t.TempDir())
}

func TestOSFSWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()

	require.NoError(t, fsys.WriteFile(filepath.Join(dir, "syndockrc"), []byte("[General]\n"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "syndockrc", entries[0].Name())
}

func TestOSFSWriteFailsWithoutParent(t *testing.T) {
	fsys := filesystem.NewOS()
	err := fsys.WriteFile(filepath.Join(t.TempDir(), "missing", "syndockrc"), []byte("x"), 0644)
	assert.Error(t, err)
}

func TestAferoFS(t *testing.T) {
	exerciseFS(t, filesystem.NewAferoFS(afero.NewMemMapFs()), "/virtual")
}
