// Package settings migrates the global lattedockrc file to syndockrc.
package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/logging"
	"github.com/syndromatic/syndock-migrate/pkg/paths"
	"github.com/syndromatic/syndock-migrate/pkg/types"
	"gopkg.in/ini.v1"
)

// Override sets Section.Key to Value in the migrated settings
type Override struct {
	Section string
	Key     string
	Value   string
}

// Overrides are SynDock's new defaults, applied in order and
// unconditionally over whatever lattedockrc held
var Overrides = []Override{
	{Section: "General", Key: "IconSize", Value: "64"},
	{Section: "General", Key: "ZoomFactor", Value: "1.40"},
}

// loadOptions follow KDE's config format: "=" is the only delimiter, key
// case matters, # or ; inside a value are literal characters and a
// trailing backslash is an escaped character, not a line continuation.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// Apply parses data as an INI document, applies overrides and serializes
// the result. Sections and keys not named by an override pass through.
func Apply(data []byte, overrides []Override) ([]byte, error) {
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsParse, "cannot parse settings")
	}

	for _, o := range overrides {
		// Section creates the section when it is missing.
		cfg.Section(o.Section).Key(o.Key).SetValue(o.Value)
	}

	return serialize(cfg), nil
}

// serialize writes cfg in KDE form: [Section] headers, Key=Value lines and a
// blank line between sections. Values are written verbatim, never quoted.
func serialize(cfg *ini.File) []byte {
	var buf bytes.Buffer

	for _, section := range cfg.Sections() {
		keys := section.Keys()
		if section.Name() == ini.DefaultSection {
			if len(keys) == 0 {
				continue
			}
		} else {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			writeComment(&buf, section.Comment)
			buf.WriteString("[" + section.Name() + "]\n")
		}

		for _, key := range keys {
			writeComment(&buf, key.Comment)
			buf.WriteString(key.Name() + "=" + key.Value() + "\n")
		}
	}

	return buf.Bytes()
}

func writeComment(buf *bytes.Buffer, comment string) {
	if comment == "" {
		return
	}
	for _, line := range strings.Split(comment, "\n") {
		if !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, ";") {
			line = "# " + line
		}
		buf.WriteString(line + "\n")
	}
}

// Migrator converts lattedockrc into syndockrc
type Migrator struct {
	fs        types.FS
	reporter  types.Reporter
	overrides []Override
	logger    zerolog.Logger
}

// NewMigrator creates a Migrator using the default overrides
func NewMigrator(fs types.FS, reporter types.Reporter) *Migrator {
	return &Migrator{
		fs:        fs,
		reporter:  reporter,
		overrides: Overrides,
		logger:    logging.GetLogger("settings"),
	}
}

// Migrate reads srcRoot/lattedockrc, applies the overrides and writes
// dstRoot/syndockrc. A missing lattedockrc is not an error. Failures are
// reported and returned with SettingsFailed; they never abort a run.
func (m *Migrator) Migrate(srcRoot, dstRoot string, dryRun bool) (types.SettingsOutcome, error) {
	done := logging.LogOperationStart(m.logger, "migrate settings")
	defer done()

	src := filepath.Join(srcRoot, paths.LatteSettingsFile)
	dst := filepath.Join(dstRoot, paths.SynDockSettingsFile)
	logger := m.logger.With().Str("source", src).Str("dest", dst).Logger()

	if _, err := m.fs.Stat(src); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No settings file")
			m.reporter.Warning("No %s found, skipping global settings", paths.LatteSettingsFile)
			return types.SettingsSkipped, nil
		}
		return m.fail(logger, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", src))
	}

	if dryRun {
		m.reporter.DryRun("[DRY RUN] Would migrate: %s → %s", paths.LatteSettingsFile, paths.SynDockSettingsFile)
		return types.SettingsDryRun, nil
	}

	data, err := m.fs.ReadFile(src)
	if err != nil {
		return m.fail(logger, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", src))
	}

	migrated, err := Apply(data, m.overrides)
	if err != nil {
		return m.fail(logger, err)
	}

	if err := m.fs.MkdirAll(dstRoot, 0755); err != nil {
		return m.fail(logger, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dstRoot))
	}
	if err := m.fs.WriteFile(dst, migrated, 0644); err != nil {
		return m.fail(logger, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst))
	}

	logger.Info().Int("overrides", len(m.overrides)).Msg("Settings migrated")
	m.reporter.Success("Migrated: %s → %s", paths.LatteSettingsFile, paths.SynDockSettingsFile)
	return types.SettingsMigrated, nil
}

func (m *Migrator) fail(logger zerolog.Logger, err error) (types.SettingsOutcome, error) {
	logger.Error().Err(err).Msg("Settings migration failed")
	m.reporter.Failure("Failed to migrate settings: %v", errors.Cause(err))
	return types.SettingsFailed, err
}
