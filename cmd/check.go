package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hdrlint/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.h>...",
		Short: "Check individual header files",
		Long:  "Check the structure of the given header files and print their head, preamble and body sections.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Config:    cfg,
				Paths:     parsePaths(args),
				Verbosity: verboseFlag,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
