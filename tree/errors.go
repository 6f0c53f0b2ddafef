package tree

import (
	"fmt"
	"strings"
)

// maxReportedMissing bounds how many missing paths a ValidationError
// message enumerates.
const maxReportedMissing = 5

// ConstructionError indicates that materializing a layout entry failed. It
// carries the failing path and the underlying backend error.
type ConstructionError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to create %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying backend error.
func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

// BasePathMissingError indicates the base path of a validated layout does
// not exist on the backend.
type BasePathMissingError struct {
	Path string
}

// Error implements the error interface.
func (e *BasePathMissingError) Error() string {
	return fmt.Sprintf("base path does not exist: %s", e.Path)
}

// ValidationError reports layout entries missing from the backend. Missing
// holds every absent path in traversal order; the message enumerates the
// first few along with the total count.
type ValidationError struct {
	Missing []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	shown := e.Missing
	suffix := ""
	if len(shown) > maxReportedMissing {
		shown = shown[:maxReportedMissing]
		suffix = ", ..."
	}
	return fmt.Sprintf("missing %d entries: %s%s", len(e.Missing), strings.Join(shown, ", "), suffix)
}

// MigrationError indicates that relocating a subtree failed.
type MigrationError struct {
	Src   string
	Dst   string
	Cause error
}

// Error implements the error interface.
func (e *MigrationError) Error() string {
	return fmt.Sprintf("failed to migrate %s to %s: %v", e.Src, e.Dst, e.Cause)
}

// Unwrap returns the underlying backend error.
func (e *MigrationError) Unwrap() error {
	return e.Cause
}
