package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/syndromatic/syndock-migrate/pkg/filesystem"
	"github.com/syndromatic/syndock-migrate/pkg/paths"
	"github.com/syndromatic/syndock-migrate/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// LatteEnv is a self-contained home directory holding Latte Dock
// configuration to migrate
type LatteEnv struct {
	HomeDir    string
	ConfigHome string
	StateHome  string

	FS    types.FS
	Paths *paths.Paths

	Type EnvType

	t *testing.T
}

// NewLatteEnv creates an isolated environment on the real filesystem and
// points HOME, XDG_CONFIG_HOME and XDG_STATE_HOME at it
func NewLatteEnv(t *testing.T) *LatteEnv {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	env := &LatteEnv{
		HomeDir:    home,
		ConfigHome: filepath.Join(home, ".config"),
		StateHome:  filepath.Join(home, ".local", "state"),
		FS:         filesystem.NewOS(),
		Type:       EnvIsolated,
		t:          t,
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvConfigHome, env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	if err := env.FS.MkdirAll(env.ConfigHome, 0755); err != nil {
		t.Fatalf("Failed to create config home: %v", err)
	}

	env.Paths = paths.FromEnvironment()
	return env
}

// NewMemoryEnv creates an in-memory environment. The process environment
// is left untouched.
func NewMemoryEnv(t *testing.T) *LatteEnv {
	t.Helper()

	env := &LatteEnv{
		HomeDir:    "/virtual/home",
		ConfigHome: "/virtual/home/.config",
		StateHome:  "/virtual/home/.local/state",
		FS:         NewTestFS(),
		Type:       EnvMemoryOnly,
		t:          t,
	}

	if err := env.FS.MkdirAll(env.ConfigHome, 0755); err != nil {
		t.Fatalf("Failed to create config home: %v", err)
	}

	env.Paths = paths.New(env.ConfigHome, env.HomeDir, env.StateHome)
	return env
}

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// BackupDir returns the default backup directory for this environment
func (env *LatteEnv) BackupDir() string {
	return env.Paths.DefaultBackupDir()
}

// CreateLatteRoot creates an empty Latte configuration root
func (env *LatteEnv) CreateLatteRoot() string {
	env.t.Helper()
	root := env.Paths.LatteRoot()
	if err := env.FS.MkdirAll(root, 0755); err != nil {
		env.t.Fatalf("Failed to create latte root: %v", err)
	}
	return root
}

// WriteLatteFile writes a file relative to the Latte configuration root
func (env *LatteEnv) WriteLatteFile(rel, content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.Paths.LatteRoot(), rel), content)
}

// WriteLayout writes layouts/<name> under the Latte configuration root
func (env *LatteEnv) WriteLayout(name, content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.Paths.LatteLayoutsDir(), name), content)
}

// WriteSettings writes lattedockrc
func (env *LatteEnv) WriteSettings(content string) string {
	env.t.Helper()
	return env.writeFile(env.Paths.LatteSettingsPath(), content)
}

// ReadFile reads a file, failing the test on error
func (env *LatteEnv) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists
func (env *LatteEnv) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}

func (env *LatteEnv) writeFile(path, content string) string {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
