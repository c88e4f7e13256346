package layouts_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	migerrors "github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/layouts"
	"github.com/syndromatic/syndock-migrate/pkg/testutil"
)

func TestMigrateOne(t *testing.T) {
	env := testutil.NewMemoryEnv(t)
	reporter := testutil.NewRecordingReporter()
	m := layouts.NewMigrator(env.FS, reporter)

	src := env.WriteLayout("foo.layout.latte", "plugin=org.kde.latte.containment\n")
	dst := filepath.Join(env.Paths.SynDockLayoutsDir(), "foo.layout.syndock")

	require.NoError(t, m.MigrateOne(src, dst, false))

	assert.Equal(t, "plugin=org.syndromatic.syndock.containment\n", env.ReadFile(dst))
	assert.Equal(t, "plugin=org.kde.latte.containment\n", env.ReadFile(src), "source must not change")
	assert.True(t, reporter.Has("success", "foo.layout.latte → foo.layout.syndock"))
}

func TestMigrateOneOverwrites(t *testing.T) {
	env := testutil.NewMemoryEnv(t)
	m := layouts.NewMigrator(env.FS, testutil.NewRecordingReporter())

	src := env.WriteLayout("foo.layout.latte", "Latte Dock")
	dst := filepath.Join(env.Paths.SynDockLayoutsDir(), "foo.layout.syndock")
	require.NoError(t, env.FS.MkdirAll(filepath.Dir(dst), 0755))
	require.NoError(t, env.FS.WriteFile(dst, []byte("stale content that is longer"), 0644))

	require.NoError(t, m.MigrateOne(src, dst, false))
	assert.Equal(t, "SynDock", env.ReadFile(dst))
}

func TestMigrateOneDryRun(t *testing.T) {
	env := testutil.NewMemoryEnv(t)
	reporter := testutil.NewRecordingReporter()
	m := layouts.NewMigrator(env.FS, reporter)

	dst := filepath.Join(env.Paths.SynDockLayoutsDir(), "foo.layout.syndock")

	// The source does not even need to exist: a dry run performs no I/O.
	require.NoError(t, m.MigrateOne("/nowhere/foo.layout.latte", dst, true))

	assert.False(t, env.Exists(dst))
	assert.False(t, env.Exists(env.Paths.SynDockRoot()))
	assert.Equal(t, []string{"[DRY RUN] Would migrate: foo.layout.latte"}, reporter.Of("dry-run"))
}

func TestMigrateOneErrors(t *testing.T) {
	boom := errors.New("input/output error")

	tests := []struct {
		name     string
		setup    func(env *testutil.LatteEnv, fsys *testutil.FailingFS, src, dst string)
		wantCode migerrors.ErrorCode
	}{
		{
			name: "missing source",
			setup: func(env *testutil.LatteEnv, fsys *testutil.FailingFS, src, dst string) {
			},
			wantCode: migerrors.ErrFileRead,
		},
		{
			name: "read failure",
			setup: func(env *testutil.LatteEnv, fsys *testutil.FailingFS, src, dst string) {
				env.WriteLayout("foo.layout.latte", "x")
				fsys.FailRead(src, boom)
			},
			wantCode: migerrors.ErrFileRead,
		},
		{
			name: "invalid utf-8",
			setup: func(env *testutil.LatteEnv, fsys *testutil.FailingFS, src, dst string) {
				env.WriteLayout("foo.layout.latte", "Latte Dock \xff\xfe")
			},
			wantCode: migerrors.ErrDecode,
		},
		{
			name: "cannot create destination dir",
			setup: func(env *testutil.LatteEnv, fsys *testutil.FailingFS, src, dst string) {
				env.WriteLayout("foo.layout.latte", "x")
				fsys.FailMkdir(filepath.Dir(dst), boom)
			},
			wantCode: migerrors.ErrDirCreate,
		},
		{
			name: "write failure",
			setup: func(env *testutil.LatteEnv, fsys *testutil.FailingFS, src, dst string) {
				env.WriteLayout("foo.layout.latte", "x")
				fsys.FailWrite(dst, boom)
			},
			wantCode: migerrors.ErrFileWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewMemoryEnv(t)
			fsys := testutil.NewFailingFS(env.FS)
			reporter := testutil.NewRecordingReporter()
			m := layouts.NewMigrator(fsys, reporter)

			src := filepath.Join(env.Paths.LatteLayoutsDir(), "foo.layout.latte")
			dst := filepath.Join(env.Paths.SynDockLayoutsDir(), "foo.layout.syndock")
			tt.setup(env, fsys, src, dst)

			err := m.MigrateOne(src, dst, false)
			require.Error(t, err)
			assert.True(t, migerrors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.True(t, reporter.Has("failure", "Failed to migrate foo.layout.latte"))
			assert.Equal(t, 0, fsys.Writes)
		})
	}
}

func TestMigrateAll(t *testing.T) {
	env := testutil.NewMemoryEnv(t)
	reporter := testutil.NewRecordingReporter()
	m := layouts.NewMigrator(env.FS, reporter)

	env.WriteLayout("zeta.layout.latte", "Latte Dock")
	env.WriteLayout("alpha.layout.latte", "latte-dock")
	env.WriteLayout("notes.txt", "Latte Dock")
	env.WriteLayout("old.layout.latte.bak", "Latte Dock")
	env.WriteLayout("dir.layout.latte/inner", "Latte Dock")

	report := m.MigrateAll(env.Paths.LatteRoot(), env.Paths.SynDockRoot(), false)

	assert.Equal(t, 2, report.Found)
	assert.Equal(t, 2, report.Migrated)
	assert.Empty(t, report.Failures)

	dstDir := env.Paths.SynDockLayoutsDir()
	assert.Equal(t, "syndock", env.ReadFile(filepath.Join(dstDir, "alpha.layout.syndock")))
	assert.Equal(t, "SynDock", env.ReadFile(filepath.Join(dstDir, "zeta.layout.syndock")))
	assert.False(t, env.Exists(filepath.Join(dstDir, "notes.txt")))

	assert.True(t, reporter.Has("info", "Found 2 layout(s) to migrate..."))
	assert.Equal(t, []string{
		"Migrated: alpha.layout.latte → alpha.layout.syndock",
		"Migrated: zeta.layout.latte → zeta.layout.syndock",
	}, reporter.Of("success"), "layouts are processed in name order")
}

func TestMigrateAllContinuesAfterFailure(t *testing.T) {
	env := testutil.NewMemoryEnv(t)
	fsys := testutil.NewFailingFS(env.FS)
	reporter := testutil.NewRecordingReporter()
	m := layouts.NewMigrator(fsys, reporter)

	env.WriteLayout("a.layout.latte", "Latte Dock")
	bad := env.WriteLayout("b.layout.latte", "Latte Dock")
	env.WriteLayout("c.layout.latte", "Latte Dock")
	fsys.FailRead(bad, os.ErrPermission)

	report := m.MigrateAll(env.Paths.LatteRoot(), env.Paths.SynDockRoot(), false)

	assert.Equal(t, 3, report.Found)
	assert.Equal(t, 2, report.Migrated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "b.layout.latte", report.Failures[0].Name)
	assert.ErrorIs(t, report.Failures[0].Err, os.ErrPermission)

	dstDir := env.Paths.SynDockLayoutsDir()
	assert.True(t, env.Exists(filepath.Join(dstDir, "a.layout.syndock")))
	assert.False(t, env.Exists(filepath.Join(dstDir, "b.layout.syndock")))
	assert.True(t, env.Exists(filepath.Join(dstDir, "c.layout.syndock")))
}

func TestMigrateAllMissingLayoutsDir(t *testing.T) {
	env := testutil.NewMemoryEnv(t)
	env.WriteSettings("[General]\n")
	reporter := testutil.NewRecordingReporter()
	m := layouts.NewMigrator(env.FS, reporter)

	report := m.MigrateAll(env.Paths.LatteRoot(), env.Paths.SynDockRoot(), false)

	assert.Equal(t, 0, report.Found)
	assert.Equal(t, 0, report.Migrated)
	assert.Empty(t, report.Failures)
	assert.True(t, reporter.Has("warning", "No layouts directory found at"))
	assert.Empty(t, reporter.Of("failure"))
}

func TestMigrateAllDryRun(t *testing.T) {
	env := testutil.NewMemoryEnv(t)
	reporter := testutil.NewRecordingReporter()
	m := layouts.NewMigrator(env.FS, reporter)

	env.WriteLayout("one.layout.latte", "Latte Dock")
	env.WriteLayout("two.layout.latte", "Latte Dock")

	report := m.MigrateAll(env.Paths.LatteRoot(), env.Paths.SynDockRoot(), true)

	assert.Equal(t, 2, report.Migrated)
	assert.False(t, env.Exists(env.Paths.SynDockRoot()))
	assert.Equal(t, []string{
		"[DRY RUN] Would migrate: one.layout.latte",
		"[DRY RUN] Would migrate: two.layout.latte",
	}, reporter.Of("dry-run"))
}

func TestMigrateAllOnDisk(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	m := layouts.NewMigrator(env.FS, testutil.NewRecordingReporter())

	env.WriteLayout("foo.layout.latte", "[Containments][1]\nplugin=org.kde.latte.containment\n")

	report := m.MigrateAll(env.Paths.LatteRoot(), env.Paths.SynDockRoot(), false)
	require.Equal(t, 1, report.Migrated)

	data, err := os.ReadFile(filepath.Join(env.Paths.SynDockLayoutsDir(), "foo.layout.syndock"))
	require.NoError(t, err)
	assert.Equal(t, "[Containments][1]\nplugin=org.syndromatic.syndock.containment\n", string(data))
}
