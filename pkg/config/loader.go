package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/logging"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "OXI_"

// ProjectFiles are looked up, in order, in the project directory. The first
// one found is loaded.
var ProjectFiles = []string{"oxi.toml", ".oxi.toml"}

// LoadOptions selects the configuration layers
type LoadOptions struct {
	// ProjectDir is searched for ProjectFiles. Empty means the working
	// directory.
	ProjectDir string
	// UserFile overrides the XDG user config location.
	UserFile string
	// SkipUser disables the user config layer.
	SkipUser bool
	// SkipProject disables the project config layer.
	SkipProject bool
	// Overrides are applied last, keyed by dotted path ("compile.pretty").
	Overrides map[string]interface{}
}

// UserConfigPath returns the XDG location of the user config
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "oxi", "config.toml")
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	return Load(LoadOptions{SkipUser: true, SkipProject: true})
}

// Load merges every configuration layer and decodes the result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUser {
		userFile := opts.UserFile
		if userFile == "" {
			userFile = UserConfigPath()
		}
		if err := loadFile(k, userFile); err != nil {
			return nil, err
		}
	}

	// 3. Project config
	if !opts.SkipProject {
		dir := opts.ProjectDir
		if dir == "" {
			dir = "."
		}
		for _, name := range ProjectFiles {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				if err := loadFile(k, path); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Bool("pretty", cfg.Compile.Pretty).
		Str("rawBlocks", cfg.Compile.RawBlocks).
		Str("extension", cfg.Sources.Extension).
		Int("workers", cfg.Build.Workers).
		Msg("Configuration loaded")

	return &cfg, nil
}

// loadFile merges a TOML file when it exists
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

// envKey maps OXI_COMPILE_RAW_BLOCKS to compile.raw_blocks. Only the first
// underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
