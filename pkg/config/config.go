package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/swelham/oxi/pkg/compiler"
	"github.com/swelham/oxi/pkg/document"
	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/finder"
)

// Config is the effective oxi configuration
type Config struct {
	Compile CompileConfig `koanf:"compile" toml:"compile"`
	Sources SourcesConfig `koanf:"sources" toml:"sources"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Build   BuildConfig   `koanf:"build" toml:"build"`
}

// CompileConfig holds compiler settings
type CompileConfig struct {
	Pretty    bool   `koanf:"pretty" toml:"pretty"`
	RawBlocks string `koanf:"raw_blocks" toml:"raw_blocks"`
}

// SourcesConfig controls template discovery
type SourcesConfig struct {
	Extension string   `koanf:"extension" toml:"extension"`
	Exclude   []string `koanf:"exclude" toml:"exclude"`
}

// OutputConfig controls where build output goes
type OutputConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// BuildConfig controls the batch build
type BuildConfig struct {
	Workers int `koanf:"workers" toml:"workers"`
}

// Validate rejects values the rest of the program cannot act on
func (c *Config) Validate() error {
	if _, err := document.ParseRawBlockMode(c.Compile.RawBlocks); err != nil {
		return invalid("compile.raw_blocks", c.Compile.RawBlocks, err.Error())
	}
	if !strings.HasPrefix(c.Sources.Extension, ".") || len(c.Sources.Extension) < 2 {
		return invalid("sources.extension", c.Sources.Extension, "must start with '.' and name an extension")
	}
	for _, name := range c.Sources.Exclude {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return invalid("sources.exclude", name, "entries must be plain directory names")
		}
	}
	if c.Build.Workers < 0 {
		return invalid("build.workers", c.Build.Workers, "must not be negative")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid value for %s: %s", key, reason).
		WithDetail("key", key).
		WithDetail("value", value)
}

// RawBlockMode returns the parsed compile.raw_blocks setting. Validate must
// have accepted the config.
func (c *Config) RawBlockMode() document.RawBlockMode {
	mode, _ := document.ParseRawBlockMode(c.Compile.RawBlocks)
	return mode
}

// CompilerOptions builds compiler options from the compile section
func (c *Config) CompilerOptions() compiler.Options {
	return compiler.Options{
		Pretty:    c.Compile.Pretty,
		RawBlocks: c.RawBlockMode(),
	}
}

// FinderOptions builds discovery options from the sources section
func (c *Config) FinderOptions() finder.Options {
	return finder.Options{
		Extension: c.Sources.Extension,
		Exclude:   c.Sources.Exclude,
	}
}

// Marshal renders the config as TOML
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode configuration")
	}
	return data, nil
}

// String returns the TOML form, or the error text if encoding fails
func (c *Config) String() string {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return string(data)
}
