package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "cli.js")
	require.NoError(t, os.WriteFile(testFile, []byte("#!/usr/bin/env node"), 0644))

	// ReadFile
	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "#!/usr/bin/env node", string(content))

	// ReadFile refuses directories
	_, err = fs.ReadFile(tmpDir)
	assert.Error(t, err)

	// MkdirAll
	binDir := filepath.Join(tmpDir, "node_modules", ".bin")
	require.NoError(t, fs.MkdirAll(binDir, 0755))

	// ReadDir
	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// Symlink stores the target verbatim
	link := filepath.Join(binDir, "cli")
	require.NoError(t, fs.Symlink("../../cli.js", link))
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "../../cli.js", target)

	// Stat follows the link, Lstat does not
	info, err := fs.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	info, err = fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	// RemoveAll takes a link without following it
	require.NoError(t, fs.RemoveAll(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))
	_, err = fs.Stat(testFile)
	require.NoError(t, err)

	// RemoveAll
	require.NoError(t, fs.RemoveAll(filepath.Join(tmpDir, "node_modules")))
	_, err = fs.Stat(binDir)
	assert.True(t, os.IsNotExist(err))
}

func TestOSLstatSeesDanglingLink(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "dangling")
	require.NoError(t, os.Symlink("missing.js", link))

	_, err := fs.Stat(link)
	assert.True(t, os.IsNotExist(err))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestAferoMemoryFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/project/node_modules/foo/package.json", []byte(`{"bin":"cli.js"}`), 0644))
	fs := NewAferoFS(mem)

	entries, err := fs.ReadDir("/project/node_modules")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "foo", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	content, err := fs.ReadFile("/project/node_modules/foo/package.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"bin":"cli.js"}`, string(content))

	info, err := fs.Lstat("/project/node_modules/foo")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	t.Run("symlinks_unsupported", func(t *testing.T) {
		err := fs.Symlink("../foo/cli.js", "/project/node_modules/.bin/foo")
		require.Error(t, err)
		assert.True(t, errors.Is(err, afero.ErrNoSymlink))
	})
}
