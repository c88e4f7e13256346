package filesystem

import (
	"io/fs"
	"os"

	"github.com/creachadair/atomicfile"
	"github.com/syndromatic/syndock-migrate/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile replaces name atomically. The parent directory must exist.
func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := atomicfile.New(name, perm)
	if err != nil {
		return err
	}
	defer f.Cancel()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Close()
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}
