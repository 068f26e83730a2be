package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compile indentation-based templates to HTML, XML or JSON"
	MsgCompileShort    = "Compile a single template"
	MsgBuildShort      = "Compile every template below a directory"
	MsgCheckShort      = "Compile every template without writing output"
	MsgGenConfigShort  = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgOutputWritten = "Wrote %s"
	MsgVersionFormat = "oxi %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrReadStdin     = "cannot read template from stdin"
	MsgErrConfigExists  = "%s already exists"
	MsgErrRenderReport  = "failed to render report: %w"
	MsgErrFormatFlag    = "invalid --format value: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "User config file (default $XDG_CONFIG_HOME/oxi/config.toml)"
	MsgFlagPretty    = "Indent output by source depth"
	MsgFlagRawBlocks = "What to do with style and script bodies: drop or verbatim"
	MsgFlagOutput    = "Write output to this file instead of stdout"
	MsgFlagOutDir    = "Mirror outputs into this directory"
	MsgFlagWorkers   = "Templates compiled at once (0 = one per CPU)"
	MsgFlagDryRun    = "Compile without writing any files"
	MsgFlagFormat    = "Report format: auto, term, text or json"
	MsgFlagTemplate  = "Print the commented defaults instead of the effective values"
	MsgFlagWrite     = "Save the output to ./oxi.toml"
)

// Long messages loaded from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLong string

	//go:embed msgs/compile-long.txt
	msgCompileLong string

	//go:embed msgs/compile-example.txt
	msgCompileExample string

	//go:embed msgs/build-long.txt
	msgBuildLong string

	//go:embed msgs/build-example.txt
	msgBuildExample string

	//go:embed msgs/check-long.txt
	msgCheckLong string

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLong string

	//go:embed msgs/completion-long.txt
	msgCompletionLong string

	//go:embed msgs/usage-template.txt
	msgUsageTemplate string
)

// Exported variables for use in commands
var (
	MsgRootLong       = strings.TrimSpace(msgRootLong)
	MsgCompileLong    = strings.TrimSpace(msgCompileLong)
	MsgCompileExample = strings.TrimRight(msgCompileExample, "\n")
	MsgBuildLong      = strings.TrimSpace(msgBuildLong)
	MsgBuildExample   = strings.TrimRight(msgBuildExample, "\n")
	MsgCheckLong      = strings.TrimSpace(msgCheckLong)
	MsgGenConfigLong  = strings.TrimSpace(msgGenConfigLong)
	MsgCompletionLong = strings.TrimSpace(msgCompletionLong)
	MsgUsageTemplate  = strings.TrimRight(msgUsageTemplate, "\n") + "\n"
)
