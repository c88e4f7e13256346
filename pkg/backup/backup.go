// Package backup snapshots the Latte Dock configuration root before any
// migration write happens.
package backup

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/internal/hashutil"
	"github.com/syndromatic/syndock-migrate/pkg/logging"
	"github.com/syndromatic/syndock-migrate/pkg/types"
)

const (
	// Prefix starts the name of every snapshot directory
	Prefix = "latte_backup_"

	// TimestampLayout is appended to Prefix, at second resolution
	TimestampLayout = "20060102_150405"
)

// Manager creates backup snapshots
type Manager struct {
	fs       types.FS
	reporter types.Reporter
	now      func() time.Time
	logger   zerolog.Logger
}

// NewManager creates a Manager. A nil now defaults to time.Now.
func NewManager(fs types.FS, reporter types.Reporter, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		fs:       fs,
		reporter: reporter,
		now:      now,
		logger:   logging.GetLogger("backup"),
	}
}

// SnapshotName returns the directory name of a snapshot taken at t
func SnapshotName(t time.Time) string {
	return Prefix + t.Format(TimestampLayout)
}

// Backup copies sourceRoot recursively to a new timestamped directory
// under backupRoot and returns its path. The source is only read.
func (m *Manager) Backup(sourceRoot, backupRoot string) (string, error) {
	done := logging.LogOperationStart(m.logger, "backup")
	defer done()

	info, err := m.fs.Stat(sourceRoot)
	if err != nil || !info.IsDir() {
		m.reporter.Warning("Source directory does not exist: %s", sourceRoot)
		return "", errors.Newf(errors.ErrSourceNotFound, "source directory does not exist: %s", sourceRoot).
			WithDetail("path", sourceRoot)
	}

	dest := filepath.Join(backupRoot, SnapshotName(m.now()))
	logger := m.logger.With().Str("source", sourceRoot).Str("dest", dest).Logger()

	if err := m.validate(sourceRoot, dest); err != nil {
		logger.Error().Err(err).Msg("Refusing to back up")
		m.reporter.Failure("Backup failed: %v", err)
		return "", err
	}

	if err := m.copyTree(sourceRoot, dest); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrBackupFailed, "cannot back up %s", sourceRoot).
			WithDetail("dest", dest)
		logger.Error().Err(wrapped).Msg("Backup failed")
		m.reporter.Failure("Backup failed: %v", errors.Cause(err))
		return "", wrapped
	}

	logger.Info().Msg("Backup created")
	m.reporter.Success("Backed up to: %s", dest)
	return dest, nil
}

func (m *Manager) validate(sourceRoot, dest string) error {
	if isWithin(dest, sourceRoot) {
		return errors.Newf(errors.ErrInvalidInput, "backup directory %s is inside %s", dest, sourceRoot)
	}
	if _, err := m.fs.Stat(dest); err == nil {
		return errors.Newf(errors.ErrBackupExists, "backup %s already exists", dest).
			WithDetail("path", dest)
	}
	return nil
}

// copyTree copies src into dst, which must not exist yet. Symlinks are
// followed, so the snapshot holds real content. Every copied file is read
// back and compared by checksum.
func (m *Manager) copyTree(src, dst string) error {
	info, err := m.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", src)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			m.logger.Warn().Str("file", src).Str("mode", info.Mode().String()).Msg("Skipping special file")
			return nil
		}
		data, err := m.fs.ReadFile(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", src)
		}
		if err := m.fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
		}
		copied, err := hashutil.FileChecksum(m.fs, dst)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot verify %s", dst)
		}
		if want := hashutil.Checksum(data); copied != want {
			return errors.Newf(errors.ErrBackupFailed, "copy of %s does not match the original", src).
				WithDetail("want", want).
				WithDetail("got", copied)
		}
		m.logger.Trace().Str("file", src).Int("bytes", len(data)).Msg("Copied file")
		return nil
	}

	// Owner write is kept so the snapshot can be filled and later removed.
	if err := m.fs.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dst)
	}

	entries, err := m.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirRead, "cannot list %s", src)
	}
	for _, entry := range entries {
		if err := m.copyTree(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func isWithin(path, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}
