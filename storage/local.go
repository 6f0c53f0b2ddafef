package storage

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/treekit/treekit/common/util"
)

const (
	dirMode  = os.FileMode(0o755)
	fileMode = os.FileMode(0o644)
)

// Local is an Adapter backed by the host filesystem.
type Local struct{}

// Assert that Local implements the Adapter interface.
var _ Adapter = (*Local)(nil)

// NewLocal creates a host filesystem adapter.
func NewLocal() *Local {
	return &Local{}
}

// Mkdir creates the directory at path.
func (l *Local) Mkdir(path string, parents, existOk bool) error {
	if !existOk {
		if _, err := os.Stat(path); err == nil {
			return errors.Errorf("directory already exists: %s", path)
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	if parents {
		return os.MkdirAll(path, dirMode)
	}

	err := os.Mkdir(path, dirMode)
	if err != nil && existOk && os.IsExist(err) {
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return nil
		}
	}
	return err
}

// Exists reports whether path exists.
func (l *Local) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, err
	}
}

// Chmod applies a permission mode to path.
func (l *Local) Chmod(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}

// WriteFile creates the file at path with the given content.
func (l *Local) WriteFile(path, content string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, fileMode)
	if err != nil {
		return err
	}

	if _, err = file.WriteString(content); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Remove deletes the entry at path.
func (l *Local) Remove(path string, recursive bool) error {
	if recursive {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// Move relocates src to dst.
func (l *Local) Move(src, dst string) error {
	return os.Rename(src, dst)
}

// Join joins path elements using the host separator.
func (l *Local) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Dir returns the parent of path.
func (l *Local) Dir(path string) string {
	return filepath.Dir(path)
}

// Resolve expands environment variables and the home directory in path and
// converts it into an absolute path.
func (l *Local) Resolve(path string) (string, error) {
	return util.ResolvePath(path)
}

// Kind reports the backend kind.
func (l *Local) Kind() BackendKind {
	return KindLocal
}
