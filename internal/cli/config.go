package cli

import (
	"github.com/spf13/cobra"

	"github.com/swelham/oxi/pkg/config"
	"github.com/swelham/oxi/pkg/logging"
)

// flagBinding maps a command flag to the configuration key it overrides
type flagBinding struct {
	flag string
	key  string
}

var (
	bindPretty    = flagBinding{flag: "pretty", key: "compile.pretty"}
	bindRawBlocks = flagBinding{flag: "raw-blocks", key: "compile.raw_blocks"}
	bindOutDir    = flagBinding{flag: "out", key: "output.dir"}
	bindWorkers   = flagBinding{flag: "workers", key: "build.workers"}
)

// loadConfig merges the configuration layers with the flags the user set on
// cmd. Flags left at their defaults never override a config file.
func loadConfig(cmd *cobra.Command, bindings ...flagBinding) (*config.Config, error) {
	overrides := make(map[string]interface{})
	for _, b := range bindings {
		f := cmd.Flags().Lookup(b.flag)
		if f == nil || !f.Changed {
			continue
		}
		overrides[b.key] = f.Value.String()
	}

	userFile, _ := cmd.Root().PersistentFlags().GetString("config")

	cfg, err := config.Load(config.LoadOptions{
		UserFile:  userFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cli")
	logger.Debug().
		Int("overrides", len(overrides)).
		Str("user_config", userFile).
		Msg("Configuration loaded")
	return cfg, nil
}
