package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the read side of a filesystem
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS wraps an afero filesystem
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewDataDir returns a read-only filesystem rooted at dir. Names that would
// resolve outside dir are rejected.
func NewDataDir(dir string) FS {
	base := afero.NewBasePathFs(afero.NewOsFs(), filepath.Clean(dir))
	return NewAferoFS(afero.NewReadOnlyFs(base))
}

// NewIOFS adapts an io/fs filesystem such as an embed.FS
func NewIOFS(fsys fs.FS) FS {
	return NewAferoFS(afero.FromIOFS{FS: fsys})
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}
