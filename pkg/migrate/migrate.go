// Package migrate runs a complete Latte Dock to SynDock migration: backup,
// layouts and global settings, in that order.
package migrate

import (
	"time"

	"github.com/syndromatic/syndock-migrate/pkg/backup"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/layouts"
	"github.com/syndromatic/syndock-migrate/pkg/logging"
	"github.com/syndromatic/syndock-migrate/pkg/paths"
	"github.com/syndromatic/syndock-migrate/pkg/settings"
	"github.com/syndromatic/syndock-migrate/pkg/types"
)

// Options configures a run
type Options struct {
	Paths *paths.Paths

	// BackupDir receives the snapshot. Empty means the default location.
	BackupDir string

	DryRun   bool
	NoBackup bool

	FS       types.FS
	Reporter types.Reporter

	// Now stamps the backup directory. Nil means time.Now.
	Now func() time.Time
}

// Run executes the migration. The only error it returns is
// SOURCE_NOT_FOUND (or INVALID_INPUT for unusable options); failures of
// individual stages are reported and recorded in the summary.
func Run(opts Options) (*types.Summary, error) {
	logger := logging.GetLogger("migrate")
	done := logging.LogOperationStart(logger, "migration")
	defer done()

	if opts.Paths == nil || opts.FS == nil || opts.Reporter == nil {
		return nil, errors.New(errors.ErrInvalidInput, "paths, filesystem and reporter are required")
	}

	r := opts.Reporter
	src := opts.Paths.LatteRoot()
	dst := opts.Paths.SynDockRoot()

	backupDir := opts.BackupDir
	if backupDir == "" {
		backupDir = opts.Paths.DefaultBackupDir()
	}
	backupDir = opts.Paths.ExpandHome(backupDir)

	logger.Debug().
		Str("source", src).
		Str("dest", dst).
		Str("backupDir", backupDir).
		Bool("dryRun", opts.DryRun).
		Bool("noBackup", opts.NoBackup).
		Msg("Starting migration")

	r.Info("📁 Latte config: %s", src)
	r.Info("📁 SynDock config: %s", dst)

	if info, err := opts.FS.Stat(src); err != nil || !info.IsDir() {
		r.Failure("No Latte Dock configuration found. Nothing to migrate.")
		return nil, errors.Newf(errors.ErrSourceNotFound, "no Latte Dock configuration at %s", src).
			WithDetail("path", src)
	}

	summary := &types.Summary{
		SourceRoot: src,
		DestRoot:   dst,
		DryRun:     opts.DryRun,
	}

	switch {
	case opts.DryRun:
		summary.Backup = types.BackupDryRun
	case opts.NoBackup:
		summary.Backup = types.BackupSkipped
	default:
		r.Section("📦 Creating backup...")
		path, err := backup.NewManager(opts.FS, r, opts.Now).Backup(src, backupDir)
		if err != nil {
			logger.Warn().Err(err).Msg("Continuing without backup")
			r.Warning("Backup failed. Proceeding with caution...")
			summary.Backup = types.BackupFailed
			summary.BackupErr = err
		} else {
			summary.Backup = types.BackupCreated
			summary.BackupPath = path
		}
	}

	r.Section("🔄 Migrating layouts...")
	summary.Layouts = layouts.NewMigrator(opts.FS, r).MigrateAll(src, dst, opts.DryRun)

	r.Section("🔄 Migrating global settings...")
	summary.Settings, summary.SettingsErr = settings.NewMigrator(opts.FS, r).Migrate(src, dst, opts.DryRun)

	logger.Info().
		Int("layoutsFound", summary.Layouts.Found).
		Int("layoutsMigrated", summary.Layouts.Migrated).
		Int("layoutsFailed", len(summary.Layouts.Failures)).
		Str("settings", string(summary.Settings)).
		Str("backup", string(summary.Backup)).
		Msg("Migration finished")

	return summary, nil
}
