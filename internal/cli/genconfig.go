package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swelham/oxi/pkg/config"
	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/filesystem"
	"github.com/swelham/oxi/pkg/ui"
)

func newGenConfigCmd() *cobra.Command {
	var (
		template bool
		write    bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			if template {
				content = []byte(config.GenerateConfigContent())
			} else {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				data, err := cfg.Marshal()
				if err != nil {
					return err
				}
				content = data
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			target := config.ProjectFiles[0]
			fsys := filesystem.NewOS()
			if _, err := fsys.Stat(target); err == nil {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, target).
					WithDetail("path", target)
			}
			if err := filesystem.WriteFileAll(fsys, target, content); err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, ui.FormatAuto)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgOutputWritten, target))
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
