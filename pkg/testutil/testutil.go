package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name, creating missing parents, and
// returns the file path.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateDir creates parent/name and returns its path
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()
	path := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

// CreateSymlink places a link at link whose content is target. The target
// need not exist.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, os.Symlink(target, link))
}

// AssertSymlink requires link to be a symlink whose stored content is
// exactly target.
func AssertSymlink(t *testing.T, link, target string) {
	t.Helper()
	info, err := os.Lstat(link)
	require.NoError(t, err, "no entry at %s", link)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s is not a symlink", link)

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got, "target of %s", link)
}

// AssertNoFile checks nothing sits at path, not even a dangling symlink
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "%s exists but should not", path)
}

// SkipOnWindows skips tests that create symlinks
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlink fixtures need a POSIX filesystem")
	}
}
