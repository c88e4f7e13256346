package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/logging"
	"github.com/syndromatic/syndock-migrate/pkg/paths"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "SYNDOCK_MIGRATE_"

// Config holds the tool's settings
type Config struct {
	BackupDir string `koanf:"backup_dir"`
	NoBackup  bool   `koanf:"no_backup"`
	NoColor   bool   `koanf:"no_color"`

	// File is the config file that was loaded, empty when none was found
	File string `koanf:"-"`
}

// Load builds the configuration. explicitPath, when non-empty, must point
// to a readable TOML or YAML file; otherwise the default locations are
// probed and a missing file is fine.
func Load(p *paths.Paths, explicitPath string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"backup_dir": p.DefaultBackupDir(),
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load computed defaults")
	}

	// 2. Config file
	path, err := findConfigFile(p, explicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, ok := parserFor(path)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format: %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	cfg.File = path
	cfg.BackupDir = p.ExpandHome(cfg.BackupDir)

	logger.Debug().
		Str("backupDir", cfg.BackupDir).
		Bool("noBackup", cfg.NoBackup).
		Bool("noColor", cfg.NoColor).
		Str("file", cfg.File).
		Msg("Configuration loaded")

	return &cfg, nil
}

func findConfigFile(p *paths.Paths, explicitPath string) (string, error) {
	if explicitPath != "" {
		path := p.ExpandHome(explicitPath)
		info, err := os.Stat(path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
		if info.IsDir() {
			return "", errors.Newf(errors.ErrConfigLoad, "config path %s is a directory", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	for _, candidate := range p.ConfigFileCandidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// parserFor picks a parser from the file extension
func parserFor(path string) (koanf.Parser, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), true
	case ".yaml", ".yml":
		return yaml.Parser(), true
	default:
		return nil, false
	}
}
