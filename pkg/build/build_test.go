// pkg/build/build_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: afero MemMapFs, compiler
// PURPOSE: Test batch discovery, concurrent compilation and output layout

package build_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swelham/oxi/pkg/build"
	"github.com/swelham/oxi/pkg/compiler"
	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/filesystem"
	"github.com/swelham/oxi/pkg/finder"
	"github.com/swelham/oxi/pkg/testutil"
)

func TestRun_WritesNextToSources(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{
		"/site/index.oxit":      "doctype html\np Home\n",
		"/site/feeds/main.oxit": "doctype xml\nfeed\n",
		"/site/data/v.oxit":     "doctype json\nvalue 1\n",
	})

	report, err := build.Run(context.Background(), fsys, build.Options{Root: "/site", Workers: 2})
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Equal(t, 3, report.Succeeded())
	assert.Equal(t, "<!DOCTYPE html><p>Home</p>", testutil.ReadMemoryFile(t, fsys, "/site/index.html"))
	assert.Equal(t, `<?xml version="1.0" encoding="utf-8" ?><feed></feed>`, testutil.ReadMemoryFile(t, fsys, "/site/feeds/main.xml"))
	assert.Equal(t, "<value>1</value>", testutil.ReadMemoryFile(t, fsys, "/site/data/v.json"))

	sources := make([]string, len(report.Files))
	for i, f := range report.Files {
		sources[i] = f.Source
	}
	assert.Equal(t, []string{"/site/data/v.oxit", "/site/feeds/main.oxit", "/site/index.oxit"}, sources)
}

func TestRun_MirrorsIntoOutDir(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{
		"/src/index.oxit":        "doctype html\nul\n    li a\n",
		"/src/blog/post.oxit":    "doctype html\narticle\n",
		"/src/drafts/later.oxit": "doctype html\np later\n",
	})

	report, err := build.Run(context.Background(), fsys, build.Options{
		Root:    "/src",
		OutDir:  "/public",
		Find:    finder.Options{Exclude: []string{"drafts"}},
		Compile: compiler.Options{Pretty: true},
	})
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Len(t, report.Files, 2)
	assert.Equal(t, "<!DOCTYPE html>\n<ul>\n    <li>a</li>\n</ul>\n", testutil.ReadMemoryFile(t, fsys, "/public/index.html"))
	assert.Equal(t, "<!DOCTYPE html>\n<article></article>\n", testutil.ReadMemoryFile(t, fsys, "/public/blog/post.html"))
	assert.False(t, filesystem.IsDir(fsys, "/public/drafts"))
}

func TestRun_SingleFileRoot(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{
		"/src/pages/about.oxit": "doctype html\nh1 About\n",
	})

	report, err := build.Run(context.Background(), fsys, build.Options{Root: "/src/pages/about.oxit", OutDir: "/out"})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, "/out/about.html", report.Files[0].Output)
	assert.Equal(t, "<!DOCTYPE html><h1>About</h1>", testutil.ReadMemoryFile(t, fsys, "/out/about.html"))
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"/src/a.oxit": "doctype html\np a\n"})

	report, err := build.Run(context.Background(), fsys, build.Options{Root: "/src", OutDir: "/out", DryRun: true})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.True(t, report.DryRun)
	assert.Equal(t, "/out/a.html", report.Files[0].Output)
	assert.Equal(t, len("<!DOCTYPE html><p>a</p>"), report.Files[0].Bytes)
	assert.False(t, filesystem.IsDir(fsys, "/out"))
}

func TestRun_CollectsFailures(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{
		"/src/good.oxit":   "doctype html\np ok\n",
		"/src/empty.oxit":  "",
		"/src/broken.oxit": "doctype html\ndiv)\n",
		"/src/yaml.oxit":   "doctype yaml\nroot\n",
	})

	report, err := build.Run(context.Background(), fsys, build.Options{Root: "/src"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded())
	failed := report.Failed()
	require.Len(t, failed, 3)
	assert.Equal(t, "/src/broken.oxit", failed[0].Source)
	testutil.AssertErrorCode(t, failed[0].Err, errors.ErrInvalidSyntax)
	testutil.AssertErrorCode(t, failed[1].Err, errors.ErrEmptyDocument)
	testutil.AssertErrorCode(t, failed[2].Err, errors.ErrUnknownDoctype)

	summary := report.Err()
	require.Error(t, summary)
	assert.Contains(t, summary.Error(), "3 of 4")
	assert.Equal(t, "<!DOCTYPE html><p>ok</p>", testutil.ReadMemoryFile(t, fsys, "/src/good.html"))
}

func TestRun_ManyFiles(t *testing.T) {
	files := make(map[string]string)
	for i := 0; i < 40; i++ {
		files[fmt.Sprintf("/src/p%02d.oxit", i)] = fmt.Sprintf("doctype html\np %d\n", i)
	}
	fsys := testutil.MemoryFS(t, files)

	report, err := build.Run(context.Background(), fsys, build.Options{Root: "/src", Workers: 4})
	require.NoError(t, err)

	require.Len(t, report.Files, 40)
	for i, f := range report.Files {
		require.NoError(t, f.Err)
		assert.Equal(t, fmt.Sprintf("/src/p%02d.html", i), f.Output)
		assert.Equal(t, fmt.Sprintf("<!DOCTYPE html><p>%d</p>", i), testutil.ReadMemoryFile(t, fsys, f.Output))
	}
}

func TestRun_Cancelled(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"/src/a.oxit": "doctype html\np a\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := build.Run(ctx, fsys, build.Options{Root: "/src"})

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Succeeded())
}

func TestRun_MissingRoot(t *testing.T) {
	_, err := build.Run(context.Background(), filesystem.NewMemory(), build.Options{Root: "/none"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		source string
		base   string
		outDir string
		ext    string
		want   string
	}{
		{name: "next_to_source", source: "/s/a/b.oxit", base: "/s", ext: ".html", want: "/s/a/b.html"},
		{name: "mirrored", source: "/s/a/b.oxit", base: "/s", outDir: "/o", ext: ".xml", want: "/o/a/b.xml"},
		{name: "outside_base", source: "/x/b.oxit", base: "/s", outDir: "/o", ext: ".json", want: "/o/b.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), build.OutputPath(tt.source, tt.base, tt.outDir, tt.ext))
		})
	}
}
