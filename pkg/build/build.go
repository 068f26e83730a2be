// Package build compiles every template under a root concurrently and writes
// the results next to the sources or into a mirrored output tree.
package build

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/swelham/oxi/pkg/compiler"
	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/filesystem"
	"github.com/swelham/oxi/pkg/finder"
	"github.com/swelham/oxi/pkg/logging"
)

// errSkipped marks templates that were never built because the build was
// cancelled first
var errSkipped = errors.New(errors.ErrInternal, "build cancelled before this template was compiled")

// Options configures a batch build
type Options struct {
	// Root is a directory to search or a single template.
	Root string
	// OutDir mirrors the source tree below it. Empty writes next to sources.
	OutDir string
	// Workers bounds the number of files compiled at once. Zero means
	// one per CPU.
	Workers int
	// DryRun compiles without writing anything.
	DryRun bool

	Find    finder.Options
	Compile compiler.Options
}

// FileResult is the outcome for one template
type FileResult struct {
	Source   string
	Output   string
	Dialect  string
	Bytes    int
	Duration time.Duration
	Err      error
}

// OK reports whether the file compiled (and was written, unless dry-run)
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Report collects the per-file results in discovery order
type Report struct {
	Root   string
	DryRun bool
	Files  []FileResult
}

// Succeeded counts the files that built cleanly
func (r *Report) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.OK() {
			n++
		}
	}
	return n
}

// Failed returns the failed files in discovery order
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}

// Err summarizes failures as a single error, or nil when every file built
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	sources := make([]string, len(failed))
	for i, f := range failed {
		sources[i] = f.Source
	}
	return errors.Newf(errors.ErrInvalidInput, "%d of %d templates failed to build", len(failed), len(r.Files)).
		WithDetail("failed", sources)
}

// Run discovers the templates under opts.Root and builds them. The returned
// error covers discovery and cancellation only; per-file failures are in the
// report.
func Run(ctx context.Context, fsys filesystem.FS, opts Options) (*Report, error) {
	logger := logging.GetLogger("build")
	done := logging.LogOperationStart(logger, "build")
	defer done()

	sources, err := finder.Find(fsys, opts.Root, opts.Find)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Root:   opts.Root,
		DryRun: opts.DryRun,
		Files:  make([]FileResult, len(sources)),
	}
	for i, source := range sources {
		i, source := i, source
		report.Files[i] = FileResult{Source: source, Err: errSkipped}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	base := opts.Root
	if !filesystem.IsDir(fsys, base) {
		base = filepath.Dir(base)
	}

	logger.Info().
		Str("root", opts.Root).
		Int("templates", len(sources)).
		Int("workers", workers).
		Bool("dryRun", opts.DryRun).
		Msg("Building templates")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, source := range sources {
		i, source := i, source
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Files[i] = buildOne(fsys, source, base, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	logger.Info().
		Int("succeeded", report.Succeeded()).
		Int("failed", len(report.Failed())).
		Msg("Build finished")

	return report, nil
}

func buildOne(fsys filesystem.FS, source, base string, opts Options) FileResult {
	logger := logging.GetLogger("build")
	start := time.Now()
	res := FileResult{Source: source}

	result, err := compiler.CompileFile(fsys, source, opts.Compile)
	if err != nil {
		logger.Warn().Err(err).Str("source", source).Msg("Template failed")
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	res.Dialect = result.Dialect.String()
	res.Bytes = len(result.Output)
	res.Output = OutputPath(source, base, opts.OutDir, result.Dialect.Extension())

	if !opts.DryRun {
		if err := filesystem.WriteFileAll(fsys, res.Output, []byte(result.Output)); err != nil {
			res.Err = err
		}
	}

	res.Duration = time.Since(start)
	logger.Debug().
		Str("source", source).
		Str("output", res.Output).
		Dur("duration", res.Duration).
		Msg("Template built")
	return res
}

// OutputPath maps a template to its output file. The source extension is
// replaced by ext; with outDir set the path relative to base is mirrored
// below outDir.
func OutputPath(source, base, outDir, ext string) string {
	stem := strings.TrimSuffix(source, filepath.Ext(source)) + ext
	if outDir == "" {
		return stem
	}
	rel, err := filepath.Rel(base, stem)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(stem)
	}
	return filepath.Join(outDir, rel)
}
