package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treekit/treekit/tree"
)

func TestSummaryRendersNestedLayout(t *testing.T) {
	layout := tree.Layout{
		"uploads": map[string]interface{}{
			"raw":       nil,
			"processed": map[string]interface{}{"text": nil},
		},
		"readme.txt": "hello",
	}

	expected := strings.Join([]string{
		"├── readme.txt",
		"└── uploads",
		"    ├── processed",
		"    │   └── text",
		"    └── raw",
		"",
	}, "\n")

	assert.Equal(t, expected, tree.Summary(layout))
}

func TestSummaryInnerSiblingIndent(t *testing.T) {
	layout := tree.Layout{
		"a": map[string]interface{}{"inner": nil},
		"b": nil,
	}

	expected := strings.Join([]string{
		"├── a",
		"│   └── inner",
		"└── b",
		"",
	}, "\n")

	assert.Equal(t, expected, tree.Summary(layout))
}

func TestSummaryExcludesMetadata(t *testing.T) {
	layout := tree.Layout{
		"uploads": map[string]interface{}{
			"_perms": 0o755,
			"raw":    nil,
		},
		"_hidden": "meta",
	}

	rendered := tree.Summary(layout)
	assert.NotContains(t, rendered, "_perms")
	assert.NotContains(t, rendered, "_hidden")
	assert.Contains(t, rendered, "uploads")
	assert.Contains(t, rendered, "raw")
}

func TestSummaryEmptyLayout(t *testing.T) {
	assert.Empty(t, tree.Summary(tree.Layout{}))
}
