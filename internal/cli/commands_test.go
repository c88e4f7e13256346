package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func seed(env *testutil.LatteEnv) {
	env.WriteLayout("Default.layout.latte", "plugin=org.kde.latte.containment\n")
	env.WriteSettings("[General]\nIconSize=48\n")
}

func backups(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestRootCmd_Migrates(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)

	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "SynDock Configuration Migration Tool")
	assert.Contains(t, out, "Latte config: "+env.Paths.LatteRoot())
	assert.Contains(t, out, "Migration complete!")
	assert.Contains(t, out, "SynDock configs are now in: "+env.Paths.SynDockRoot())

	layout := env.ReadFile(filepath.Join(env.Paths.SynDockLayoutsDir(), "Default.layout.syndock"))
	assert.Equal(t, "plugin=org.syndromatic.syndock.containment\n", layout)
	assert.Contains(t, env.ReadFile(env.Paths.SynDockSettingsPath()), "IconSize=64")

	assert.Len(t, backups(t, env.BackupDir()), 1)
	assert.True(t, env.Exists(env.Paths.LogFilePath()))
}

func TestRootCmd_MissingSource(t *testing.T) {
	env := testutil.NewLatteEnv(t)

	out, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.Contains(t, out, "No Latte Dock configuration found. Nothing to migrate.")
	assert.NotContains(t, out, "Migration complete!")
	assert.False(t, env.Exists(env.Paths.SynDockRoot()))
}

func TestRootCmd_DryRun(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)
	before := testutil.SnapshotTree(t, env.FS, env.HomeDir)

	out, err := execute(t, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "[DRY RUN] Would migrate: Default.layout.latte")
	assert.Contains(t, out, "This was a DRY RUN. No changes were made.")
	assert.NotContains(t, out, "Creating backup")
	assert.Equal(t, before, testutil.SnapshotTree(t, env.FS, env.HomeDir))
	assert.False(t, env.Exists(env.Paths.LogFilePath()))
}

func TestRootCmd_NoBackupFlag(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)

	_, err := execute(t, "--no-backup")
	require.NoError(t, err)

	assert.Empty(t, backups(t, env.BackupDir()))
	assert.True(t, env.Exists(env.Paths.SynDockSettingsPath()))
}

func TestRootCmd_BackupDirFlag(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)

	out, err := execute(t, "-b", "~/dock-backups")
	require.NoError(t, err)

	dir := filepath.Join(env.HomeDir, "dock-backups")
	entries := backups(t, dir)
	require.Len(t, entries, 1)
	assert.Contains(t, out, "Backed up to: "+filepath.Join(dir, entries[0].Name()))
	assert.Empty(t, backups(t, env.BackupDir()))
}

func TestRootCmd_ConfigFile(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)
	require.NoError(t, env.FS.MkdirAll(env.Paths.SynDockRoot(), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(env.Paths.SynDockRoot(), "migrate.toml"), []byte("no_backup = true\n"), 0644))

	_, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, backups(t, env.BackupDir()))
}

func TestRootCmd_EnvironmentBackupDir(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)
	dir := filepath.Join(env.HomeDir, "from-env")
	t.Setenv("SYNDOCK_MIGRATE_BACKUP_DIR", dir)

	_, err := execute(t)
	require.NoError(t, err)
	assert.Len(t, backups(t, dir), 1)
}

func TestRootCmd_FlagOverridesConfig(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)
	cfgPath := filepath.Join(env.HomeDir, "migrate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backup_dir: "+filepath.Join(env.HomeDir, "from-file")+"\n"), 0644))

	_, err := execute(t, "--config", cfgPath, "--backup-dir", filepath.Join(env.HomeDir, "from-flag"))
	require.NoError(t, err)

	assert.Empty(t, backups(t, filepath.Join(env.HomeDir, "from-file")))
	assert.Len(t, backups(t, filepath.Join(env.HomeDir, "from-flag")), 1)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	env := testutil.NewLatteEnv(t)
	seed(env)

	_, err := execute(t, "--config", filepath.Join(env.HomeDir, "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.False(t, env.Exists(env.Paths.SynDockRoot()))
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	testutil.NewLatteEnv(t)

	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "syndock-migrate version dev")
	assert.Contains(t, out, "Commit: unknown")
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "syndock-migrate version dev")
}

func TestExecute_ExitCodes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("success", func(t *testing.T) {
		env := testutil.NewLatteEnv(t)
		seed(env)

		var stdout, stderr bytes.Buffer
		assert.Equal(t, 0, Execute([]string{"--no-backup"}, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "Migration complete!")
		assert.Empty(t, stderr.String())
	})

	t.Run("missing source is reported once", func(t *testing.T) {
		testutil.NewLatteEnv(t)

		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, Execute(nil, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "No Latte Dock configuration found.")
		assert.NotContains(t, stderr.String(), "Error:")
	})

	t.Run("config error is printed", func(t *testing.T) {
		env := testutil.NewLatteEnv(t)

		var stdout, stderr bytes.Buffer
		code := Execute([]string{"--config", filepath.Join(env.HomeDir, "nope.toml")}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "❌ Error:")
		assert.Contains(t, stderr.String(), "CONFIG_LOAD")
	})
}

func TestErrorNoColor(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name string
		opts rootOptions
		env  string
		want bool
	}{
		{"default", rootOptions{}, "", false},
		{"flag", rootOptions{noColor: true}, "", true},
		{"environment", rootOptions{}, "true", true},
		{"unparsable environment", rootOptions{}, "maybe", false},
		{"resolved config wins", rootOptions{resolvedNoColor: &no}, "true", false},
		{"resolved config", rootOptions{resolvedNoColor: &yes}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SYNDOCK_MIGRATE_NO_COLOR", tt.env)
			assert.Equal(t, tt.want, tt.opts.errorNoColor())
		})
	}
}
