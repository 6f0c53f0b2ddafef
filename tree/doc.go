// Package tree implements the declarative directory layout engine. A layout
// is a nested map describing a hierarchy of directories and files: nested
// map values denote directories, everything else denotes a file, and string
// values become the file's content. Keys starting with an underscore are
// metadata and are never materialized; the only standardized metadata key
// is "_perms", an integer permission mode applied to the directory that
// carries it.
//
// The Manager walks a layout against a pluggable storage backend and can
// materialize it (Create), check it for completeness (Validate), tear it
// down children first (Cleanup), and relocate a subtree (Migrate). The two
// pure helpers, Summary and FlatPaths, transform a layout without touching
// the backend.
//
// The main features of this package include:
//
//   - Parsing the loosely typed layout map into directory and file nodes
//     exactly once, at the boundary, so traversal never re-inspects types.
//   - Idempotent materialization: existing directories are tolerated and
//     existing file content is preserved unless overwriting is requested.
//   - Dry-run traversal that surfaces the full intended action set while
//     performing zero backend mutations.
//   - A small error taxonomy distinguishing construction, validation and
//     migration failures, never leaking raw backend errors.
package tree
