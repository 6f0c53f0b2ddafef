package storage

import (
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
)

// Billy is an Adapter backed by any go-billy filesystem. Paths are logical
// keys using forward slashes regardless of the host OS, and Resolve is a
// passthrough since billy filesystems have no notion of the current user's
// environment.
type Billy struct {
	fs   billy.Filesystem
	kind BackendKind
}

var _ Adapter = (*Billy)(nil)

// NewBilly wraps an arbitrary billy filesystem as an Adapter.
func NewBilly(fs billy.Filesystem, kind BackendKind) *Billy {
	return &Billy{fs: fs, kind: kind}
}

// NewMemory creates an adapter over a fresh in-memory filesystem. Useful
// for hermetic tests and dry experimentation.
func NewMemory() *Billy {
	return NewBilly(memfs.New(), KindMemory)
}

// Underlying returns the wrapped billy filesystem.
func (b *Billy) Underlying() billy.Filesystem {
	return b.fs
}

// Mkdir creates the directory at path.
func (b *Billy) Mkdir(p string, parents, existOk bool) error {
	if _, err := b.fs.Stat(p); err == nil {
		if existOk {
			return nil
		}
		return errors.Errorf("directory already exists: %s", p)
	} else if !os.IsNotExist(err) {
		return err
	}

	if !parents {
		if _, err := b.fs.Stat(b.Dir(p)); err != nil {
			return errors.WithMessagef(err, "parent directory missing for %s", p)
		}
	}

	// billy only exposes MkdirAll; the parent check above emulates the
	// non-parents variant.
	return b.fs.MkdirAll(p, dirMode)
}

// Exists reports whether path exists.
func (b *Billy) Exists(p string) (bool, error) {
	if _, err := b.fs.Stat(p); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, err
	}
}

// Chmod applies a permission mode to path. Filesystems that do not
// implement billy.Change, such as memfs, silently ignore the mode.
func (b *Billy) Chmod(p string, mode os.FileMode) error {
	if change, ok := b.fs.(billy.Change); ok {
		return change.Chmod(p, mode)
	}
	return nil
}

// WriteFile creates the file at path with the given content.
func (b *Billy) WriteFile(p, content string, overwrite bool) error {
	if !overwrite {
		if _, err := b.fs.Stat(p); err == nil {
			return errors.Errorf("file already exists: %s", p)
		} else if !os.IsNotExist(err) {
			return err
		}
	}
	return util.WriteFile(b.fs, p, []byte(content), fileMode)
}

// Remove deletes the entry at path.
func (b *Billy) Remove(p string, recursive bool) error {
	if recursive {
		return util.RemoveAll(b.fs, p)
	}
	return b.fs.Remove(p)
}

// Move relocates src to dst.
func (b *Billy) Move(src, dst string) error {
	return b.fs.Rename(src, dst)
}

// Join joins path elements with forward slashes.
func (b *Billy) Join(elem ...string) string {
	return b.fs.Join(elem...)
}

// Dir returns the parent of path.
func (b *Billy) Dir(p string) string {
	return path.Dir(p)
}

// Resolve passes the path through unchanged.
func (b *Billy) Resolve(p string) (string, error) {
	return p, nil
}

// Kind reports the backend kind.
func (b *Billy) Kind() BackendKind {
	return b.kind
}
