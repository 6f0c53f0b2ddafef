package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treekit/treekit/config"
)

const sampleProfile = `
root: /tmp/x
layout:
  uploads:
    _perms: 0o755
    raw: file
  readme.txt: hello
`

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfile), 0o644))

	profile, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x", profile.Root)
	assert.Equal(t, "_", profile.Separator)

	uploads, ok := profile.Layout["uploads"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0o755, uploads["_perms"])
	assert.Equal(t, "file", uploads["raw"])
	assert.Equal(t, "hello", profile.Layout["readme.txt"])
}

func TestParseCustomSeparator(t *testing.T) {
	profile, err := config.Parse([]byte("root: /tmp/x\nseparator: \".\"\nlayout:\n  a: file\n"))
	require.NoError(t, err)
	assert.Equal(t, ".", profile.Separator)
}

func TestParseRejectsMissingRoot(t *testing.T) {
	_, err := config.Parse([]byte("layout:\n  a: file\n"))
	assert.Error(t, err)
}

func TestParseRejectsEmptyLayout(t *testing.T) {
	_, err := config.Parse([]byte("root: /tmp/x\n"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("root: [unclosed"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
