// Package storage defines the backend capability surface the layout engine
// is written against, along with the concrete backends shipped with treekit.
// The engine depends only on the Adapter interface and never on a specific
// backend, so alternative storage systems can be plugged in by implementing
// the six primitive operations plus the pure path algebra.
//
// Shipped backends:
//
//   - Local: the host filesystem, with environment variable and home
//     directory expansion applied to user-supplied paths.
//   - Billy: any go-billy filesystem, including the in-memory memfs used
//     for hermetic testing.
//   - Cached: a decorator adding an expiring LRU cache over existence
//     checks of another adapter.
package storage
