package tree

import "strings"

// Summary renders a layout as an indentation-based tree using box-drawing
// connectors, one line per non-metadata entry, in the same sorted order the
// engine traverses in. Pure: it never touches a backend.
func Summary(layout Layout) string {
	var sb strings.Builder
	renderNodes(&sb, Parse(layout), "")
	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []*Node, indent string) {
	for i, node := range nodes {
		connector := "├── "
		childIndent := indent + "│   "
		if i == len(nodes)-1 {
			connector = "└── "
			childIndent = indent + "    "
		}

		sb.WriteString(indent)
		sb.WriteString(connector)
		sb.WriteString(node.Name)
		sb.WriteString("\n")

		if node.Type == EntryTypeDirectory {
			renderNodes(sb, node.Entries, childIndent)
		}
	}
}
