package filesystem_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/chatstyle/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "emoji/data.json", []byte(`{"1F600":"grinning"}`), 0644))

	fsys := filesystem.NewAferoFS(mem)

	data, err := fsys.ReadFile("emoji/data.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"1F600":"grinning"}`, string(data))

	_, err = fsys.ReadFile("emoji")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, err = fsys.ReadFile("missing.json")
	assert.Error(t, err)

	entries, err := fsys.ReadDir("emoji")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestDataDirStaysInside(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.json"), []byte(`{}`), 0644))
	outside := filepath.Join(filepath.Dir(root), "outside.json")
	require.NoError(t, os.WriteFile(outside, []byte(`{}`), 0644))
	t.Cleanup(func() { _ = os.Remove(outside) })

	fsys := filesystem.NewDataDir(root)

	_, err := fsys.ReadFile("a.json")
	assert.NoError(t, err)

	_, err = fsys.ReadFile("../outside.json")
	assert.Error(t, err)
}

func TestIOFS(t *testing.T) {
	fsys := filesystem.NewIOFS(fstest.MapFS{
		"cldr/en.json": &fstest.MapFile{Data: []byte(`{}`)},
	})

	data, err := fsys.ReadFile("cldr/en.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	info, err := fsys.Stat("cldr")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
