// Package cli wires the oxi commands to the compiler, the batch build and
// the configuration layers.
package cli

import (
	"embed"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/swelham/oxi/internal/version"
	"github.com/swelham/oxi/pkg/cobrax/topics"
	"github.com/swelham/oxi/pkg/logging"
)

//go:embed help/*.md
var helpFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "oxi",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but still fail
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpFS, "help", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
