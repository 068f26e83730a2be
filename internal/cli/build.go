package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/swelham/oxi/pkg/build"
	"github.com/swelham/oxi/pkg/filesystem"
	"github.com/swelham/oxi/pkg/ui"
)

var formatCompletions = []string{"auto", "term", "text", "json"}

func newBuildCmd() *cobra.Command {
	var (
		outDir  string
		pretty  bool
		workers int
		dryRun  bool
		format  string
	)

	cmd := &cobra.Command{
		Use:     "build [root]",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootArg(args), format, dryRun, bindPretty, bindOutDir, bindWorkers)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", MsgFlagOutDir)
	cmd.Flags().BoolVar(&pretty, "pretty", false, MsgFlagPretty)
	cmd.Flags().IntVar(&workers, "workers", 0, MsgFlagWorkers)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(formatCompletions, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newCheckCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "check [root]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootArg(args), format, true)
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(formatCompletions, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func runBuild(cmd *cobra.Command, root, formatFlag string, dryRun bool, bindings ...flagBinding) error {
	format, err := ui.ParseFormat(formatFlag)
	if err != nil {
		return fmt.Errorf(MsgErrFormatFlag, err)
	}

	renderer, err := newRenderer(cmd, format)
	if err != nil {
		return err
	}
	fail := func(err error) error {
		if rerr := renderer.RenderError(err); rerr != nil {
			return err
		}
		return reported(err)
	}

	cfg, err := loadConfig(cmd, bindings...)
	if err != nil {
		return fail(err)
	}

	log.Info().
		Str("root", root).
		Str("out", cfg.Output.Dir).
		Bool("dry_run", dryRun).
		Msg("Starting build")

	report, err := build.Run(cmd.Context(), filesystem.NewOS(), build.Options{
		Root:    root,
		OutDir:  cfg.Output.Dir,
		Workers: cfg.Build.Workers,
		DryRun:  dryRun,
		Find:    cfg.FinderOptions(),
		Compile: cfg.CompilerOptions(),
	})
	if err != nil {
		return fail(err)
	}

	if err := renderer.RenderReport(report); err != nil {
		return fmt.Errorf(MsgErrRenderReport, err)
	}

	// Failed files are already listed in the report
	return reported(report.Err())
}
