package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hdrlint/internal/domain"
)

// modulesCmd represents the modules command.
var modulesCmd = newModulesCmd()

func newModulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List configured library modules",
		Long:  "List the configured library modules with the number of headers found in each.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Modules(cmd.Context(), domain.ModulesArgs{Config: cfg})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
