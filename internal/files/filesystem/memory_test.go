package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("hello.txt", "Hello World!\n")

	content, err := mfs.ReadFile("/test/project/hello.txt")
	require.NoError(t, err)
	require.Equal(t, "Hello World!\n", string(content))

	content, err = mfs.ReadFile("hello.txt")
	require.NoError(t, err, "relative paths resolve against the root")
	require.Equal(t, "Hello World!\n", string(content))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("nested/folders/test.txt", "x")

	info, err := mfs.Stat("/test/project/nested/folders/test.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "test.txt", info.Name())

	info, err = mfs.Stat("/test/project/nested")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.Stat("/test/project/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadDirSorted(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("b.txt", "b")
	mfs.AddFile("a.txt", "a")
	mfs.AddBinaryFile("img/logo.png", []byte{0x89, 'P', 'N', 'G'})
	mfs.AddDir("empty")

	entries, err := mfs.ReadDir("/p")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "empty", "img"}, names)
	assert.True(t, entries[2].IsDir())
}

func TestMemoryFileSystem_FailOn(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("broken.txt", "x")
	boom := errors.New("boom")
	mfs.FailOn("broken.txt", boom)

	_, err := mfs.ReadFile("/p/broken.txt")
	assert.ErrorIs(t, err, boom)
	_, err = mfs.Stat("/p/broken.txt")
	assert.ErrorIs(t, err, boom)
}

func TestMemoryFileSystem_Accessed(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.txt", "a")

	_, _ = mfs.Stat("/p/a.txt")
	_, _ = mfs.ReadFile("/p/a.txt")
	_, _ = mfs.ReadDir("/p")

	assert.Equal(t, []string{"/p/a.txt"}, mfs.Accessed())
}
