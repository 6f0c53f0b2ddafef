package tree

import "github.com/pkg/errors"

// FlatPaths flattens a layout into a single-level map from a synthesized
// key to its resolved path, one entry per non-metadata node. Keys of nested
// entries are their ancestor keys joined by separator (DefaultSeparator
// when empty). Only the adapter's pure path algebra is used; no backend
// I/O is performed.
//
// Caveat: colliding synthesized keys resolve last-write-wins and are not
// validated.
func (m *Manager) FlatPaths(basePath string, layout Layout, separator string) (map[string]string, error) {
	base, err := m.adapter.Resolve(basePath)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to resolve base path %s", basePath)
	}

	if separator == "" {
		separator = DefaultSeparator
	}

	flat := make(map[string]string)
	m.flatten(base, Parse(layout), separator, "", flat)
	return flat, nil
}

func (m *Manager) flatten(base string, nodes []*Node, separator, parentKey string, flat map[string]string) {
	for _, node := range nodes {
		fullKey := node.Name
		if parentKey != "" {
			fullKey = parentKey + separator + node.Name
		}

		childPath := m.adapter.Join(base, node.Name)
		flat[fullKey] = childPath

		if node.Type == EntryTypeDirectory {
			m.flatten(childPath, node.Entries, separator, fullKey, flat)
		}
	}
}
