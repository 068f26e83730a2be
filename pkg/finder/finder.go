// Package finder discovers source templates below a root path.
package finder

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/filesystem"
	"github.com/swelham/oxi/pkg/logging"
)

// DefaultExtension is the file extension of source templates
const DefaultExtension = ".oxit"

// Options controls discovery
type Options struct {
	// Extension selects source files. Defaults to DefaultExtension.
	Extension string
	// Exclude lists directory names that are never descended into.
	Exclude []string
}

// Find returns the templates under root in lexical order. A root that itself
// carries the extension is returned as the only result.
func Find(fsys filesystem.FS, root string, opts Options) ([]string, error) {
	logger := logging.GetLogger("finder")
	done := logging.LogOperationStart(logger, "find")
	defer done()

	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "no such file or directory: %s", root).
				WithDetail("path", root)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", root).
			WithDetail("path", root)
	}

	if !info.IsDir() {
		if strings.HasSuffix(root, ext) {
			return []string{root}, nil
		}
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a %s template", root, ext).
			WithDetail("path", root)
	}

	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = struct{}{}
	}

	var found []string
	err = fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if _, skip := excluded[info.Name()]; skip && path != root {
				logger.Trace().Str("dir", path).Msg("Skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(info.Name(), ext) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", root).
			WithDetail("path", root)
	}

	sort.Strings(found)
	logger.Debug().Str("root", root).Int("count", len(found)).Msg("Found templates")
	return found, nil
}
