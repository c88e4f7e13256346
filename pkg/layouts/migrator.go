package layouts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/logging"
	"github.com/syndromatic/syndock-migrate/pkg/paths"
	"github.com/syndromatic/syndock-migrate/pkg/types"
)

const (
	// SourceSuffix identifies Latte Dock layout files
	SourceSuffix = ".layout.latte"

	// DestSuffix identifies SynDock layout files
	DestSuffix = ".layout.syndock"
)

// Migrator converts layout files
type Migrator struct {
	fs       types.FS
	reporter types.Reporter
	table    []Replacement
	logger   zerolog.Logger
}

// NewMigrator creates a Migrator using the default replacement table
func NewMigrator(fs types.FS, reporter types.Reporter) *Migrator {
	return &Migrator{
		fs:       fs,
		reporter: reporter,
		table:    Replacements,
		logger:   logging.GetLogger("layouts"),
	}
}

// DestinationName maps foo.layout.latte to foo.layout.syndock. Only the
// trailing suffix is touched; ".layout" elsewhere in the name is kept.
func DestinationName(sourceName string) string {
	return strings.TrimSuffix(sourceName, SourceSuffix) + DestSuffix
}

// MigrateOne writes the transformed content of src to dst. In dry-run
// mode nothing is read or written. Errors are reported and returned; they
// only concern this one file.
func (m *Migrator) MigrateOne(src, dst string, dryRun bool) error {
	name := filepath.Base(src)
	logger := m.logger.With().Str("source", src).Str("dest", dst).Logger()

	if dryRun {
		logger.Debug().Msg("Dry run, skipping layout")
		m.reporter.DryRun("[DRY RUN] Would migrate: %s", name)
		return nil
	}

	if err := m.migrate(src, dst); err != nil {
		logger.Error().Err(err).Msg("Layout migration failed")
		m.reporter.Failure("Failed to migrate %s: %v", name, errors.Cause(err))
		return err
	}

	logger.Info().Msg("Layout migrated")
	m.reporter.Success("Migrated: %s → %s", name, filepath.Base(dst))
	return nil
}

func (m *Migrator) migrate(src, dst string) error {
	data, err := m.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read layout %s", src).
			WithDetail("path", src)
	}
	if !utf8.Valid(data) {
		return errors.Newf(errors.ErrDecode, "layout %s is not valid UTF-8", src).
			WithDetail("path", src)
	}

	content := Transform(string(data), m.table)

	if err := m.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(dst)).
			WithDetail("path", filepath.Dir(dst))
	}
	if err := m.fs.WriteFile(dst, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write layout %s", dst).
			WithDetail("path", dst)
	}
	return nil
}

// MigrateAll migrates every *.layout.latte file in srcRoot/layouts to
// dstRoot/layouts, in name order. A missing layouts directory is not an
// error. Failures of individual files are collected in the report and the
// remaining files are still processed.
func (m *Migrator) MigrateAll(srcRoot, dstRoot string, dryRun bool) types.LayoutReport {
	done := logging.LogOperationStart(m.logger, "migrate layouts")
	defer done()

	var report types.LayoutReport

	srcDir := paths.LayoutsDir(srcRoot)
	dstDir := paths.LayoutsDir(dstRoot)

	names, err := m.list(srcDir)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			m.logger.Debug().Str("dir", srcDir).Msg("No layouts directory")
			m.reporter.Warning("No layouts directory found at %s", srcDir)
			return report
		}
		m.logger.Error().Err(err).Str("dir", srcDir).Msg("Cannot list layouts")
		m.reporter.Failure("Cannot read layouts directory %s: %v", srcDir, errors.Cause(err))
		return report
	}

	report.Found = len(names)
	m.reporter.Info("📂 Found %d layout(s) to migrate...", len(names))

	for _, name := range names {
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(dstDir, DestinationName(name))

		if err := m.MigrateOne(src, dst, dryRun); err != nil {
			report.Failures = append(report.Failures, types.FileFailure{Name: name, Err: err})
			continue
		}
		report.Migrated++
	}

	m.logger.Info().
		Int("found", report.Found).
		Int("migrated", report.Migrated).
		Int("failed", len(report.Failures)).
		Bool("dryRun", dryRun).
		Msg("Layouts processed")

	return report
}

// list returns the sorted names of layout files in dir. Directories that
// happen to match the suffix are skipped.
func (m *Migrator) list(dir string) ([]string, error) {
	info, err := m.fs.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot stat %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrDirRead, "%s is not a directory", dir)
	}

	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot list %s", dir)
	}

	layouts := lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		if !strings.HasSuffix(entry.Name(), SourceSuffix) {
			return false
		}
		if entry.IsDir() {
			return false
		}
		// Symlinked layouts are followed; only directories are excluded.
		if entry.Type()&os.ModeSymlink != 0 {
			target, err := m.fs.Stat(filepath.Join(dir, entry.Name()))
			return err == nil && !target.IsDir()
		}
		return true
	})

	names := lo.Map(layouts, func(entry os.DirEntry, _ int) string {
		return entry.Name()
	})
	sort.Strings(names)
	return names, nil
}
