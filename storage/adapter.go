package storage

import "os"

// BackendKind identifies the kind of storage a backend adapter is backed by.
type BackendKind int

const (
	// KindUnknown indicates the backend kind is unknown or unspecified.
	KindUnknown BackendKind = iota
	// KindLocal indicates a host filesystem backend.
	KindLocal
	// KindMemory indicates an in-memory backend.
	KindMemory
)

// String returns a string representation of the BackendKind.
func (k BackendKind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Adapter is the capability surface consumed by the layout engine. Every
// mutation the engine performs goes through one of the six primitive
// operations; Join, Dir and Resolve are pure path algebra and must not
// touch the backend.
type Adapter interface {
	// Mkdir creates the directory at path. With parents, missing ancestors
	// are created as well. With existOk, a pre-existing directory is not an
	// error; otherwise pre-existence fails.
	Mkdir(path string, parents, existOk bool) error

	// Exists reports whether path exists. It has no side effects.
	Exists(path string) (bool, error)

	// Chmod applies a permission mode to path. Backends without permission
	// support may treat this as a no-op.
	Chmod(path string, mode os.FileMode) error

	// WriteFile creates the file at path with the given content. Without
	// overwrite, an existing file is an error; with overwrite, existing
	// content is replaced.
	WriteFile(path, content string, overwrite bool) error

	// Remove deletes the entry at path. Without recursive, directories must
	// be empty to be removed.
	Remove(path string, recursive bool) error

	// Move relocates src to dst, atomically where the backend supports it.
	Move(src, dst string) error

	// Join joins path elements using the backend's separator.
	Join(elem ...string) string

	// Dir returns the parent of path.
	Dir(path string) string

	// Resolve normalizes a user-supplied path into the backend's canonical
	// form. Local backends expand environment variables and the home
	// directory and absolutize; others pass the path through.
	Resolve(path string) (string, error)

	// Kind reports what the adapter is backed by.
	Kind() BackendKind
}
