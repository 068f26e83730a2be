package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/swelham/oxi/pkg/compiler"
	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/filesystem"
	"github.com/swelham/oxi/pkg/ui"
)

func newCompileCmd() *cobra.Command {
	var (
		pretty    bool
		rawBlocks string
		output    string
	)

	cmd := &cobra.Command{
		Use:     "compile <file|->",
		Short:   MsgCompileShort,
		Long:    MsgCompileLong,
		Example: MsgCompileExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, bindPretty, bindRawBlocks)
			if err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			opts := cfg.CompilerOptions()

			var result *compiler.Result
			if args[0] == "-" {
				data, readErr := io.ReadAll(cmd.InOrStdin())
				if readErr != nil {
					return errors.Wrap(readErr, errors.ErrIoFailure, MsgErrReadStdin)
				}
				opts.Path = "<stdin>"
				result, err = compiler.CompileWithOptions(string(data), opts)
			} else {
				result, err = compiler.CompileFile(fsys, args[0], opts)
			}
			if err != nil {
				return err
			}

			log.Info().
				Str("source", args[0]).
				Str("dialect", result.Dialect.String()).
				Int("nodes", result.Nodes).
				Msg("Compiled template")

			if output != "" {
				if err := filesystem.WriteFileAll(fsys, output, []byte(result.Output)); err != nil {
					return err
				}
				renderer, err := newRenderer(cmd, ui.FormatAuto)
				if err != nil {
					return err
				}
				return renderer.RenderMessage(fmt.Sprintf(MsgOutputWritten, output))
			}

			text := result.Output
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, MsgFlagPretty)
	cmd.Flags().StringVar(&rawBlocks, "raw-blocks", "drop", MsgFlagRawBlocks)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	_ = cmd.RegisterFlagCompletionFunc("raw-blocks", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"drop", "verbatim"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
