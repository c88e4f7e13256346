package types

import (
	"io/fs"
)

// FS defines the filesystem operations needed by the migration stages
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Reporter receives the status lines shown to the user while a migration
// runs. Each method maps to a distinct marker in the terminal output.
type Reporter interface {
	// Section starts a new stage of the run
	Section(format string, args ...interface{})

	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Failure(format string, args ...interface{})

	// DryRun reports an action that would have been performed
	DryRun(format string, args ...interface{})
}
