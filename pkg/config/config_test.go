// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: temp directories, environment
// PURPOSE: Test configuration layering, validation and encoding

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swelham/oxi/pkg/document"
	"github.com/swelham/oxi/pkg/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.False(t, cfg.Compile.Pretty)
	assert.Equal(t, "drop", cfg.Compile.RawBlocks)
	assert.Equal(t, ".oxit", cfg.Sources.Extension)
	assert.Equal(t, []string{".git", "node_modules"}, cfg.Sources.Exclude)
	assert.Equal(t, "", cfg.Output.Dir)
	assert.Equal(t, 0, cfg.Build.Workers)
}

func TestLoad_Layers(t *testing.T) {
	t.Run("user_file", func(t *testing.T) {
		dir := t.TempDir()
		user := writeConfig(t, dir, "config.toml", "[compile]\npretty = true\n")

		cfg, err := Load(LoadOptions{UserFile: user, SkipProject: true})
		require.NoError(t, err)
		assert.True(t, cfg.Compile.Pretty)
		assert.Equal(t, ".oxit", cfg.Sources.Extension)
	})

	t.Run("project_overrides_user", func(t *testing.T) {
		userDir := t.TempDir()
		projectDir := t.TempDir()
		user := writeConfig(t, userDir, "config.toml", "[compile]\npretty = true\n[build]\nworkers = 2\n")
		writeConfig(t, projectDir, "oxi.toml", "[compile]\npretty = false\n[output]\ndir = \"public\"\n")

		cfg, err := Load(LoadOptions{UserFile: user, ProjectDir: projectDir})
		require.NoError(t, err)
		assert.False(t, cfg.Compile.Pretty)
		assert.Equal(t, 2, cfg.Build.Workers)
		assert.Equal(t, "public", cfg.Output.Dir)
	})

	t.Run("hidden_project_file", func(t *testing.T) {
		projectDir := t.TempDir()
		writeConfig(t, projectDir, ".oxi.toml", "[sources]\nexclude = [\"vendor\"]\n")

		cfg, err := Load(LoadOptions{SkipUser: true, ProjectDir: projectDir})
		require.NoError(t, err)
		assert.Equal(t, []string{"vendor"}, cfg.Sources.Exclude)
	})

	t.Run("missing_user_file_is_ignored", func(t *testing.T) {
		cfg, err := Load(LoadOptions{UserFile: filepath.Join(t.TempDir(), "none.toml"), SkipProject: true})
		require.NoError(t, err)
		assert.Equal(t, "drop", cfg.Compile.RawBlocks)
	})

	t.Run("environment_overrides_files", func(t *testing.T) {
		projectDir := t.TempDir()
		writeConfig(t, projectDir, "oxi.toml", "[compile]\nraw_blocks = \"drop\"\n")
		t.Setenv("OXI_COMPILE_RAW_BLOCKS", "verbatim")
		t.Setenv("OXI_BUILD_WORKERS", "3")
		t.Setenv("OXI_SOURCES_EXCLUDE", "a,b")

		cfg, err := Load(LoadOptions{SkipUser: true, ProjectDir: projectDir})
		require.NoError(t, err)
		assert.Equal(t, "verbatim", cfg.Compile.RawBlocks)
		assert.Equal(t, document.RawBlocksVerbatim, cfg.RawBlockMode())
		assert.Equal(t, 3, cfg.Build.Workers)
		assert.Equal(t, []string{"a", "b"}, cfg.Sources.Exclude)
	})

	t.Run("overrides_win", func(t *testing.T) {
		t.Setenv("OXI_COMPILE_PRETTY", "false")

		cfg, err := Load(LoadOptions{
			SkipUser:    true,
			SkipProject: true,
			Overrides:   map[string]interface{}{"compile.pretty": true, "output.dir": "dist"},
		})
		require.NoError(t, err)
		assert.True(t, cfg.Compile.Pretty)
		assert.Equal(t, "dist", cfg.Output.Dir)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed_toml", func(t *testing.T) {
		dir := t.TempDir()
		user := writeConfig(t, dir, "config.toml", "[compile\npretty = ")

		_, err := Load(LoadOptions{UserFile: user, SkipProject: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, user, errors.GetErrorDetails(err)["path"])
	})

	t.Run("invalid_value", func(t *testing.T) {
		_, err := Load(LoadOptions{
			SkipUser:    true,
			SkipProject: true,
			Overrides:   map[string]interface{}{"compile.raw_blocks": "keep"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Default()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{name: "raw_blocks", mutate: func(c *Config) { c.Compile.RawBlocks = "inline" }, key: "compile.raw_blocks"},
		{name: "extension_without_dot", mutate: func(c *Config) { c.Sources.Extension = "oxit" }, key: "sources.extension"},
		{name: "extension_only_dot", mutate: func(c *Config) { c.Sources.Extension = "." }, key: "sources.extension"},
		{name: "exclude_with_separator", mutate: func(c *Config) { c.Sources.Exclude = []string{"a/b"} }, key: "sources.exclude"},
		{name: "exclude_empty", mutate: func(c *Config) { c.Sources.Exclude = []string{""} }, key: "sources.exclude"},
		{name: "negative_workers", mutate: func(c *Config) { c.Build.Workers = -1 }, key: "build.workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}

	assert.NoError(t, valid().Validate())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Compile.Pretty = true
	cfg.Compile.RawBlocks = "verbatim"
	cfg.Sources.Extension = ".tpl"

	copts := cfg.CompilerOptions()
	assert.True(t, copts.Pretty)
	assert.Equal(t, document.RawBlocksVerbatim, copts.RawBlocks)

	fopts := cfg.FinderOptions()
	assert.Equal(t, ".tpl", fopts.Extension)
	assert.Equal(t, cfg.Sources.Exclude, fopts.Exclude)
}

func TestMarshal(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Output.Dir = "public"

	data, err := cfg.Marshal()
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "[compile]")
	assert.Contains(t, out, "raw_blocks = 'drop'")
	assert.Contains(t, out, "dir = 'public'")

	dir := t.TempDir()
	user := writeConfig(t, dir, "config.toml", out)
	reloaded, err := Load(LoadOptions{UserFile: user, SkipProject: true})
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "compile.raw_blocks", envKey("OXI_COMPILE_RAW_BLOCKS"))
	assert.Equal(t, "build.workers", envKey("OXI_BUILD_WORKERS"))
	assert.Equal(t, "output.dir", envKey("OXI_OUTPUT_DIR"))
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[compile]")
	assert.Contains(t, content, "# pretty = false")
	assert.Contains(t, content, `# raw_blocks = "drop"`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line not commented: %q", line)
	}
}
