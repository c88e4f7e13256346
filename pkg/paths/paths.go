package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigHome overrides the parent of both configuration roots
	EnvConfigHome = "XDG_CONFIG_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names. These mirror what Latte Dock and SynDock read
// and are not user-configurable.
const (
	LatteDirName        = "latte"
	SynDockDirName      = "syndock"
	LayoutsDirName      = "layouts"
	LatteSettingsFile   = "lattedockrc"
	SynDockSettingsFile = "syndockrc"

	// LogFileName is the name of the migration log under the state dir
	LogFileName = "migrate.log"
)

// configFileNames are the names probed for the tool's own config file,
// in order, under the SynDock config root
var configFileNames = []string{"migrate.toml", "migrate.yaml", "migrate.yml"}

// Paths holds every resolved location for a run
type Paths struct {
	configHome string
	home       string
	stateHome  string
}

// New creates a Paths from explicit directories. It performs no lookups.
func New(configHome, home, stateHome string) *Paths {
	return &Paths{
		configHome: filepath.Clean(configHome),
		home:       filepath.Clean(home),
		stateHome:  filepath.Clean(stateHome),
	}
}

// FromEnvironment resolves Paths from the current process environment.
// XDG_CONFIG_HOME wins when set, otherwise ~/.config is used regardless of
// platform, since that is where Latte Dock keeps its files.
func FromEnvironment() *Paths {
	// xdg caches values at init; tests and callers may have changed the env since.
	xdg.Reload()

	home := xdg.Home
	if home == "" {
		home = os.Getenv(EnvHome)
	}

	configHome := os.Getenv(EnvConfigHome)
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	return New(expandHomeWith(configHome, home), home, xdg.StateHome)
}

// ConfigHome returns the parent of both configuration roots
func (p *Paths) ConfigHome() string {
	return p.configHome
}

// Home returns the user's home directory
func (p *Paths) Home() string {
	return p.home
}

// LatteRoot returns the Latte Dock configuration root
func (p *Paths) LatteRoot() string {
	return filepath.Join(p.configHome, LatteDirName)
}

// SynDockRoot returns the SynDock configuration root
func (p *Paths) SynDockRoot() string {
	return filepath.Join(p.configHome, SynDockDirName)
}

// LatteLayoutsDir returns the directory holding *.layout.latte files
func (p *Paths) LatteLayoutsDir() string {
	return LayoutsDir(p.LatteRoot())
}

// SynDockLayoutsDir returns the directory receiving *.layout.syndock files
func (p *Paths) SynDockLayoutsDir() string {
	return LayoutsDir(p.SynDockRoot())
}

// LatteSettingsPath returns the path to lattedockrc
func (p *Paths) LatteSettingsPath() string {
	return filepath.Join(p.LatteRoot(), LatteSettingsFile)
}

// SynDockSettingsPath returns the path to syndockrc
func (p *Paths) SynDockSettingsPath() string {
	return filepath.Join(p.SynDockRoot(), SynDockSettingsFile)
}

// DefaultBackupDir returns ~/.local/share/syndock/backups
func (p *Paths) DefaultBackupDir() string {
	return filepath.Join(p.home, ".local", "share", SynDockDirName, "backups")
}

// LogFilePath returns the path of the migration log
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateHome, SynDockDirName, LogFileName)
}

// ConfigFileCandidates returns the locations probed for the tool's config
// file, highest priority first
func (p *Paths) ConfigFileCandidates() []string {
	candidates := make([]string, 0, len(configFileNames))
	for _, name := range configFileNames {
		candidates = append(candidates, filepath.Join(p.SynDockRoot(), name))
	}
	return candidates
}

// LayoutsDir returns the layouts directory under a configuration root
func LayoutsDir(root string) string {
	return filepath.Join(root, LayoutsDirName)
}

// ExpandHome expands a leading ~ to the user's home directory
func (p *Paths) ExpandHome(path string) string {
	return expandHomeWith(path, p.home)
}

// ExpandHome expands a leading ~ using the process environment
func ExpandHome(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
	}
	return expandHomeWith(path, homeDir)
}

func expandHomeWith(path, homeDir string) string {
	if path == "" || path[0] != '~' || homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
