package cli

import (
	"fmt"

	"github.com/arthur-debert/chatstyle/pkg/config"
	"github.com/arthur-debert/chatstyle/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "genconfig [path]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if path == "-" {
				fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return nil
			}

			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgConfigWritten, path)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}
