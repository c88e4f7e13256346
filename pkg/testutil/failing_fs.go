package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/syndromatic/syndock-migrate/pkg/types"
)

// FailingFS wraps a types.FS and returns injected errors for chosen
// operations on chosen paths
type FailingFS struct {
	types.FS

	readErrors  map[string]error
	writeErrors map[string]error
	mkdirErrors map[string]error

	// Writes counts successful WriteFile calls
	Writes int
}

// NewFailingFS wraps base
func NewFailingFS(base types.FS) *FailingFS {
	return &FailingFS{
		FS:          base,
		readErrors:  make(map[string]error),
		writeErrors: make(map[string]error),
		mkdirErrors: make(map[string]error),
	}
}

// FailRead makes ReadFile(path) return err
func (f *FailingFS) FailRead(path string, err error) *FailingFS {
	f.readErrors[filepath.Clean(path)] = err
	return f
}

// FailWrite makes WriteFile(path) return err
func (f *FailingFS) FailWrite(path string, err error) *FailingFS {
	f.writeErrors[filepath.Clean(path)] = err
	return f
}

// FailMkdir makes MkdirAll(path) return err
func (f *FailingFS) FailMkdir(path string, err error) *FailingFS {
	f.mkdirErrors[filepath.Clean(path)] = err
	return f
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrors[filepath.Clean(name)]; ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := f.writeErrors[filepath.Clean(name)]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	if err := f.FS.WriteFile(name, data, perm); err != nil {
		return err
	}
	f.Writes++
	return nil
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err, ok := f.mkdirErrors[filepath.Clean(path)]; ok {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return f.FS.MkdirAll(path, perm)
}
