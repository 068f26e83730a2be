package filesystem

import (
	"os"
	"path/filepath"

	"github.com/swelham/oxi/pkg/errors"
)

// WriteFileAll writes data to name, creating missing parent directories.
// Failures are reported as FILE_WRITE or DIR_CREATE errors carrying the path.
func WriteFileAll(fsys FS, name string, data []byte) error {
	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := fsys.WriteFile(name, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", name).
			WithDetail("path", name)
	}
	return nil
}

// ReadSource reads a source file. Every failure is an IO_FAILURE carrying
// the path; the wrapped error still answers os.IsNotExist and friends.
func ReadSource(fsys FS, name string) ([]byte, error) {
	data, err := fsys.ReadFile(name)
	if err == nil {
		return data, nil
	}

	reason := "io"
	switch {
	case os.IsNotExist(err):
		reason = "not_found"
	case os.IsPermission(err):
		reason = "permission"
	}
	return nil, errors.Wrapf(err, errors.ErrIoFailure, "cannot read %s", name).
		WithDetail("path", name).
		WithDetail("reason", reason)
}

// IsDir reports whether name exists and is a directory
func IsDir(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}
