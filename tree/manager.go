package tree

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/treekit/treekit/storage"
)

// Manager materializes, validates, tears down and relocates directory
// layouts against a storage backend. It holds only its adapter and logger,
// both assigned at construction; instances carry no state across calls and
// may be reused, provided callers do not overlap mutating operations on
// overlapping subtrees.
type Manager struct {
	adapter storage.Adapter
	logger  logrus.FieldLogger
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithLogger replaces the default process-wide logger with an injected one.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a layout manager over the given backend adapter.
func NewManager(adapter storage.Adapter, opts ...Option) *Manager {
	manager := &Manager{
		adapter: adapter,
		logger:  logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// Adapter returns the backend adapter the manager operates against.
func (m *Manager) Adapter() storage.Adapter {
	return m.adapter
}

// CreateOptions controls layout materialization.
type CreateOptions struct {
	// Overwrite replaces the content of files that already exist. Without
	// it, existing files are left untouched.
	Overwrite bool
	// DryRun surfaces the full intended action set through the logger
	// without performing any backend mutation.
	DryRun bool
}

// ResultNode mirrors a layout's shape with every non-metadata entry
// replaced by its materialized path. Entries is nil for files.
type ResultNode struct {
	Path    string
	Entries map[string]*ResultNode
}

// Create recursively materializes a layout under basePath. Directories are
// created with missing ancestors and tolerate pre-existence; files are
// written only when absent or when opts.Overwrite is set, so repeated calls
// are idempotent. The first failing mutation aborts the call with a
// ConstructionError; entries materialized before the failure are not
// rolled back.
func (m *Manager) Create(basePath string, layout Layout, opts CreateOptions) (*ResultNode, error) {
	base, err := m.adapter.Resolve(basePath)
	if err != nil {
		return nil, &ConstructionError{Path: basePath, Cause: err}
	}

	if !opts.DryRun {
		if err := m.adapter.Mkdir(base, true, true); err != nil {
			return nil, &ConstructionError{Path: base, Cause: err}
		}
	}

	root := &ResultNode{Path: base, Entries: make(map[string]*ResultNode)}
	if err := m.create(base, Parse(layout), opts, root); err != nil {
		return nil, err
	}

	return root, nil
}

func (m *Manager) create(base string, nodes []*Node, opts CreateOptions, result *ResultNode) error {
	for _, node := range nodes {
		childPath := m.adapter.Join(base, node.Name)

		if opts.DryRun {
			m.logger.WithFields(logrus.Fields{
				"path": childPath,
				"type": node.Type,
			}).Info("Dry run: would create entry")

			if node.Type == EntryTypeDirectory {
				child := &ResultNode{Path: childPath, Entries: make(map[string]*ResultNode)}
				result.Entries[node.Name] = child
				if err := m.create(childPath, node.Entries, opts, child); err != nil {
					return err
				}
			} else {
				result.Entries[node.Name] = &ResultNode{Path: childPath}
			}
			continue
		}

		switch node.Type {
		case EntryTypeDirectory:
			if err := m.createDirectory(childPath, node); err != nil {
				return err
			}

			child := &ResultNode{Path: childPath, Entries: make(map[string]*ResultNode)}
			result.Entries[node.Name] = child
			if err := m.create(childPath, node.Entries, opts, child); err != nil {
				return err
			}

		case EntryTypeFile:
			if err := m.createFile(childPath, node, opts.Overwrite); err != nil {
				return err
			}
			result.Entries[node.Name] = &ResultNode{Path: childPath}
		}
	}

	return nil
}

func (m *Manager) createDirectory(path string, node *Node) error {
	if err := m.adapter.Mkdir(path, true, true); err != nil {
		return &ConstructionError{Path: path, Cause: err}
	}

	if node.Perms != nil {
		if err := m.adapter.Chmod(path, *node.Perms); err != nil {
			return &ConstructionError{Path: path, Cause: err}
		}
	}

	m.logger.WithField("path", path).Debug("Created directory")
	return nil
}

func (m *Manager) createFile(path string, node *Node, overwrite bool) error {
	// The parent should already exist from the enclosing directory's
	// creation; tolerate layouts where it does not.
	if err := m.adapter.Mkdir(m.adapter.Dir(path), true, true); err != nil {
		return &ConstructionError{Path: path, Cause: err}
	}

	exists, err := m.adapter.Exists(path)
	if err != nil {
		return &ConstructionError{Path: path, Cause: err}
	}

	if exists && !overwrite {
		// idempotent: existing content is preserved
		return nil
	}

	if err := m.adapter.WriteFile(path, node.Content, true); err != nil {
		return &ConstructionError{Path: path, Cause: err}
	}

	if exists {
		m.logger.WithField("path", path).Debug("Updated file")
	} else {
		m.logger.WithField("path", path).Debug("Created file")
	}
	return nil
}

// Validate checks that every non-metadata layout entry exists under
// basePath. It fails fast with a BasePathMissingError when the base itself
// is absent; otherwise it walks the whole layout without short-circuiting
// and reports every missing path in a single ValidationError.
func (m *Manager) Validate(basePath string, layout Layout) error {
	base, err := m.adapter.Resolve(basePath)
	if err != nil {
		return errors.WithMessagef(err, "failed to resolve base path %s", basePath)
	}

	exists, err := m.adapter.Exists(base)
	if err != nil {
		return errors.WithMessagef(err, "failed to check base path %s", base)
	}
	if !exists {
		return &BasePathMissingError{Path: base}
	}

	var missing []string
	m.collectMissing(base, Parse(layout), &missing)

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	return nil
}

func (m *Manager) collectMissing(base string, nodes []*Node, missing *[]string) {
	for _, node := range nodes {
		childPath := m.adapter.Join(base, node.Name)

		exists, err := m.adapter.Exists(childPath)
		if err != nil {
			// An unverifiable entry is reported as missing rather than
			// aborting the exhaustive walk.
			m.logger.WithError(err).WithField("path", childPath).Warn("Existence check failed")
			exists = false
		}
		if !exists {
			*missing = append(*missing, childPath)
		}

		if node.Type == EntryTypeDirectory {
			m.collectMissing(childPath, node.Entries, missing)
		}
	}
}

// pathEntry is a collected layout path with its depth below the base.
type pathEntry struct {
	path  string
	depth int
}

// Cleanup deletes every layout entry under basePath, children before
// parents. It is gated behind confirm: without it, the call logs a warning
// and performs zero backend mutations. Deletion is best-effort; per-entry
// failures are logged and do not abort the remaining deletions. The base
// directory itself is never removed.
func (m *Manager) Cleanup(basePath string, layout Layout, confirm bool) error {
	if !confirm {
		m.logger.WithField("base", basePath).Warn("Cleanup requested without confirmation, nothing deleted")
		return nil
	}

	base, err := m.adapter.Resolve(basePath)
	if err != nil {
		return errors.WithMessagef(err, "failed to resolve base path %s", basePath)
	}

	var entries []pathEntry
	m.collectEntries(base, Parse(layout), 0, &entries)

	// Deepest entries first, so children are always deleted before their
	// parents. Path length breaks ties deterministically.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].depth != entries[j].depth {
			return entries[i].depth > entries[j].depth
		}
		return len(entries[i].path) > len(entries[j].path)
	})

	for _, entry := range entries {
		exists, err := m.adapter.Exists(entry.path)
		if err != nil {
			m.logger.WithError(err).WithField("path", entry.path).Warn("Existence check failed")
			continue
		}
		if !exists {
			continue
		}

		if err := m.adapter.Remove(entry.path, false); err != nil {
			m.logger.WithError(err).WithField("path", entry.path).Warn("Failed to delete entry")
			continue
		}

		m.logger.WithField("path", entry.path).Debug("Deleted entry")
	}

	return nil
}

func (m *Manager) collectEntries(base string, nodes []*Node, depth int, entries *[]pathEntry) {
	for _, node := range nodes {
		childPath := m.adapter.Join(base, node.Name)
		*entries = append(*entries, pathEntry{path: childPath, depth: depth})

		if node.Type == EntryTypeDirectory {
			m.collectEntries(childPath, node.Entries, depth+1, entries)
		}
	}
}

// Migrate relocates the entry at src to dst with a single backend move,
// creating dst's parent directory first. In dry-run mode the intended move
// is logged and the backend is left untouched.
func (m *Manager) Migrate(src, dst string, dryRun bool) error {
	srcPath, err := m.adapter.Resolve(src)
	if err != nil {
		return &MigrationError{Src: src, Dst: dst, Cause: err}
	}

	dstPath, err := m.adapter.Resolve(dst)
	if err != nil {
		return &MigrationError{Src: srcPath, Dst: dst, Cause: err}
	}

	if dryRun {
		m.logger.WithFields(logrus.Fields{
			"src": srcPath,
			"dst": dstPath,
		}).Info("Dry run: would migrate")
		return nil
	}

	exists, err := m.adapter.Exists(srcPath)
	if err != nil {
		return &MigrationError{Src: srcPath, Dst: dstPath, Cause: err}
	}
	if !exists {
		return &MigrationError{Src: srcPath, Dst: dstPath, Cause: errors.New("source path does not exist")}
	}

	if err := m.adapter.Mkdir(m.adapter.Dir(dstPath), true, true); err != nil {
		return &MigrationError{Src: srcPath, Dst: dstPath, Cause: err}
	}

	if err := m.adapter.Move(srcPath, dstPath); err != nil {
		return &MigrationError{Src: srcPath, Dst: dstPath, Cause: err}
	}

	m.logger.WithFields(logrus.Fields{
		"src": srcPath,
		"dst": dstPath,
	}).Info("Migrated")

	return nil
}
