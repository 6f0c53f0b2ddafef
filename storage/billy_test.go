package storage_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treekit/treekit/storage"
)

func TestMemoryMkdirAndExists(t *testing.T) {
	adapter := storage.NewMemory()

	require.NoError(t, adapter.Mkdir("/data/uploads/raw", true, true))

	exists, err := adapter.Exists("/data/uploads/raw")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = adapter.Exists("/data/missing")
	require.NoError(t, err)
	assert.False(t, exists)

	// existOk tolerates pre-existence, strict mode does not
	assert.NoError(t, adapter.Mkdir("/data/uploads/raw", true, true))
	assert.Error(t, adapter.Mkdir("/data/uploads/raw", true, false))
}

func TestMemoryWriteFile(t *testing.T) {
	adapter := storage.NewMemory()

	require.NoError(t, adapter.WriteFile("/data/readme.txt", "hello", false))

	file, err := adapter.Underlying().Open("/data/readme.txt")
	require.NoError(t, err)
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.Equal(t, "hello", string(content))

	assert.Error(t, adapter.WriteFile("/data/readme.txt", "changed", false))
	assert.NoError(t, adapter.WriteFile("/data/readme.txt", "changed", true))
}

func TestMemoryChmodIsNoop(t *testing.T) {
	adapter := storage.NewMemory()

	require.NoError(t, adapter.Mkdir("/data", true, true))
	// memfs does not implement billy.Change; the mode is ignored
	assert.NoError(t, adapter.Chmod("/data", 0o700))
}

func TestMemoryRemoveRecursive(t *testing.T) {
	adapter := storage.NewMemory()

	require.NoError(t, adapter.WriteFile("/data/a/one.txt", "1", false))
	require.NoError(t, adapter.WriteFile("/data/a/b/two.txt", "2", false))

	require.NoError(t, adapter.Remove("/data/a", true))

	exists, err := adapter.Exists("/data/a/b/two.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryMove(t *testing.T) {
	adapter := storage.NewMemory()

	require.NoError(t, adapter.WriteFile("/x/f.txt", "data", false))
	require.NoError(t, adapter.Move("/x/f.txt", "/y/f.txt"))

	exists, err := adapter.Exists("/y/f.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryPathAlgebra(t *testing.T) {
	adapter := storage.NewMemory()

	assert.Equal(t, "a/b/c", adapter.Join("a", "b", "c"))
	assert.Equal(t, "/data", adapter.Dir("/data/uploads"))
	assert.Equal(t, storage.KindMemory, adapter.Kind())

	// no environment expansion on logical backends
	resolved, err := adapter.Resolve("$HOME/data")
	require.NoError(t, err)
	assert.Equal(t, "$HOME/data", resolved)
}
