package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the set of filesystem operations oxi needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Walk(root string, fn filepath.WalkFunc) error
}

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS wraps an afero filesystem
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOS returns an FS backed by the host filesystem
func NewOS() FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory returns an empty in-memory FS
func NewMemory() FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// NewReadOnly wraps base so that every write fails
func NewReadOnly(base afero.Fs) FS {
	return NewAferoFS(afero.NewReadOnlyFs(base))
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

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(a.fs, root, fn)
}
