package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sd/pkg/adapters/fs"
)

func TestStorage_EnsureDir(t *testing.T) {
	s := fs.NewStorage(fs.Config{})

	t.Run("Creates Nested", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		require.NoError(t, s.EnsureDir(dir))
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Current Directory Is A No-op", func(t *testing.T) {
		assert.NoError(t, s.EnsureDir("."))
		assert.NoError(t, s.EnsureDir("./"))
	})

	t.Run("Rejects File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f.md")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		assert.Error(t, s.EnsureDir(file))
	})
}

func TestStorage_FileOps(t *testing.T) {
	s := fs.NewStorage(fs.Config{})
	dir := t.TempDir()
	note := filepath.Join(dir, "todo.md")

	ok, err := s.Exists(note)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Create(note, []byte("# Todo\n")))
	require.NoError(t, s.Append(note, []byte("more\n")))

	data, err := s.Read(note)
	require.NoError(t, err)
	assert.Equal(t, "# Todo\nmore\n", string(data))

	copyPath := filepath.Join(dir, "copy.md")
	require.NoError(t, s.Copy(note, copyPath))
	copied, err := os.ReadFile(copyPath)
	require.NoError(t, err)
	assert.Equal(t, data, copied)

	moved := filepath.Join(dir, "moved.md")
	require.NoError(t, s.Rename(copyPath, moved))
	ok, err = s.Exists(copyPath)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Remove(moved))
	ok, err = s.Exists(moved)
	require.NoError(t, err)
	assert.False(t, ok)

	state, ok := s.State().(fs.StorageState)
	require.True(t, ok)
	assert.Equal(t, fs.StorageState{Writes: 1, Appends: 1, Copies: 1, Renames: 1, Removes: 1}, state)
}

func TestStorage_AppendRequiresFile(t *testing.T) {
	s := fs.NewStorage(fs.Config{})
	err := s.Append(filepath.Join(t.TempDir(), "nope.md"), []byte("x"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStorage_List(t *testing.T) {
	s := fs.NewStorage(fs.Config{})
	dir := t.TempDir()

	for _, name := range []string{"b.md", "a.md", "image.png", "notes.md.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.md"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive", "old.md"), nil, 0644))

	names, err := s.List(dir, ".md")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md"}, names)

	t.Run("Empty Directory", func(t *testing.T) {
		names, err := s.List(t.TempDir(), ".md")
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestStorage_IsFile(t *testing.T) {
	s := fs.NewStorage(fs.Config{})
	dir := t.TempDir()
	file := filepath.Join(dir, "cat.png")
	require.NoError(t, os.WriteFile(file, []byte("img"), 0644))

	ok, err := s.IsFile(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.IsFile(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.IsFile(filepath.Join(dir, "nope.png"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorage_CopyDirectoryLeavesNothing(t *testing.T) {
	s := fs.NewStorage(fs.Config{})
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "copy.png")

	err := s.Copy(src, dst)
	assert.Error(t, err)
	assert.NoFileExists(t, dst)
}
