package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hdrlint/internal/domain"
	m "github.com/mouse-blink/hdrlint/internal/model"
)

const scanLongDescription = `Scan every header of the configured modules, including their internal
subdirectory, and print per-module and library line statistics.

By default every offending file is reported and the scan continues; use
--fail-fast to stop at the first violation. The command exits with status 1
when any violation was found.`

type scanFlags struct {
	parallel int
	failFast bool
	exclude  []string
	report   string
}

func bindScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().IntVarP(&flags.parallel, "parallel", "p", 0, "number of modules scanned in parallel (default from config, 1)")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop at the first violation")
	cmd.Flags().StringArrayVarP(&flags.exclude, "exclude", "x", nil, "exclude module-relative files matching glob (can be repeated)")
	cmd.Flags().StringVar(&flags.report, "report", "", "write the report to a .yaml, .yml or .json file")
}

// scanCmd represents the scan command.
var scanCmd = newScanCmd()
var scanCmdFlags scanFlags

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [modules...]",
		Short: "Scan library modules",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, scanCmdFlags)
		},
	}
	bindScanFlags(cmd, &scanCmdFlags)

	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags scanFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	parallel := cfg.Scan.Parallel
	if cmd.Flags().Changed("parallel") {
		parallel = flags.parallel
	}

	report := cfg.Scan.Report
	if cmd.Flags().Changed("report") {
		report = flags.report
	}

	return workflow.Scan(cmd.Context(), domain.ScanArgs{
		Config:    cfg,
		Modules:   args,
		Parallel:  parallel,
		FailFast:  flags.failFast || cfg.Scan.FailFast,
		Exclude:   append(append([]string{}, cfg.Scan.Exclude...), flags.exclude...),
		Report:    m.Path(report),
		Verbosity: verboseFlag,
	})
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
