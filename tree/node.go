package tree

import (
	"os"
	"sort"
	"strings"
)

const (
	// MetaPrefix marks metadata keys in a layout. Metadata keys are never
	// materialized as backend entries.
	MetaPrefix = "_"

	// PermsKey annotates a directory with an integer permission mode.
	PermsKey = "_perms"

	// FileMarker is a sentinel value denoting an empty file.
	FileMarker = "file"

	// DefaultSeparator joins ancestor keys in flattened path maps.
	DefaultSeparator = "_"
)

// Layout describes a directory hierarchy as a nested map. A nested map
// value denotes a directory; any other value denotes a file.
type Layout = map[string]interface{}

// EntryType represents the entry type of a parsed layout node.
type EntryType string

const (
	EntryTypeDirectory EntryType = "directory"
	EntryTypeFile      EntryType = "file"
)

// Node is a parsed layout entry. The loosely typed layout value is decided
// into a directory or file node once, at the parse boundary, so traversal
// never re-inspects value types.
type Node struct {
	Name    string
	Type    EntryType
	Content string       // file content, always empty for directories
	Perms   *os.FileMode // directory mode from a _perms annotation
	Entries []*Node      // directory entries, sorted by name
}

// Parse converts a layout map into a slice of nodes sorted by name. Go maps
// have no iteration order, so the sorted order is the engine's notion of
// traversal order. Metadata keys are consumed (for _perms) or skipped and
// never appear as nodes.
func Parse(layout Layout) []*Node {
	nodes := make([]*Node, 0, len(layout))

	for key, value := range layout {
		if strings.HasPrefix(key, MetaPrefix) {
			continue
		}

		if child, ok := value.(map[string]interface{}); ok {
			nodes = append(nodes, &Node{
				Name:    key,
				Type:    EntryTypeDirectory,
				Perms:   permsOf(child),
				Entries: Parse(child),
			})
			continue
		}

		nodes = append(nodes, &Node{
			Name:    key,
			Type:    EntryTypeFile,
			Content: contentOf(value),
		})
	}

	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Name < nodes[j].Name
	})

	return nodes
}

// permsOf extracts a _perms annotation from a directory value. Non-integer
// annotations are ignored.
func permsOf(layout Layout) *os.FileMode {
	value, ok := layout[PermsKey]
	if !ok {
		return nil
	}

	var mode os.FileMode
	switch perms := value.(type) {
	case int:
		mode = os.FileMode(perms)
	case int64:
		mode = os.FileMode(perms)
	case uint64:
		mode = os.FileMode(perms)
	case float64:
		// JSON decodes integers into float64
		if perms != float64(int64(perms)) {
			return nil
		}
		mode = os.FileMode(int64(perms))
	default:
		return nil
	}

	return &mode
}

// contentOf maps a file value to its content. Only string values other
// than the sentinels produce content; everything else is an empty file.
func contentOf(value interface{}) string {
	if content, ok := value.(string); ok && content != "" && content != FileMarker {
		return content
	}
	return ""
}
