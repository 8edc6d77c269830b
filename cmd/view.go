package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hdrlint/internal/domain"
	m "github.com/mouse-blink/hdrlint/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report>",
		Short: "Display a saved scan report",
		Long: `Display a report written by scan --report without rescanning the library.
The output format follows the report file extension (.json, .yaml or .yml).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Report:    m.Path(args[0]),
				Verbosity: verboseFlag,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
