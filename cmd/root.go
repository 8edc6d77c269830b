// Package cmd provides the root command and CLI setup for hdrlint.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/hdrlint/internal/adapter"
	"github.com/mouse-blink/hdrlint/internal/config"
	"github.com/mouse-blink/hdrlint/internal/controller"
	"github.com/mouse-blink/hdrlint/internal/domain"
	m "github.com/mouse-blink/hdrlint/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

var configFlag string
var rootDirFlag string
var includeDirFlag string
var modulesFileFlag string
var prefixFlag string
var verboseFlag int

var rootScanFlags scanFlags

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hdrlint [modules...]",
		Short: "Audit the structure of library header files",
		Long: `hdrlint checks that every header of a C/C++ library follows the layout
convention and reports line statistics per file, module and library.

Each header must start with a documentation comment declaring the file
(@file name.h), followed by a pragma guard and an include guard named
PREFIX_NAME_H_, then the body.

Without a subcommand hdrlint scans the configured modules, or only the
modules named as arguments.`,
		// Module names are positional, so subcommand lookup must not reject them.
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(verboseFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, rootScanFlags)
		},
	}

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultFile, "path to the TOML configuration file")
	cmd.PersistentFlags().StringVar(&rootDirFlag, "root", "", "library root directory")
	cmd.PersistentFlags().StringVar(&includeDirFlag, "include-dir", "", "include directory holding the modules, relative to the root")
	cmd.PersistentFlags().StringVar(&modulesFileFlag, "modules-file", "", "newline-delimited module list, relative to the root")
	cmd.PersistentFlags().StringVar(&prefixFlag, "prefix", "", "include guard macro prefix")
	cmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "increase output detail (repeatable)")
	bindScanFlags(cmd, &rootScanFlags)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func setupLogging(verbosity int) {
	level := slog.LevelWarn

	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig reads the configuration file and applies the flags that were
// set explicitly. The file is optional unless --config was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("root") {
		cfg.Root = rootDirFlag
	}

	if cmd.Flags().Changed("include-dir") {
		cfg.IncludeDir = includeDirFlag
	}

	if cmd.Flags().Changed("modules-file") {
		cfg.ModulesFile = modulesFileFlag
		cfg.Modules = nil
	}

	if cmd.Flags().Changed("prefix") {
		cfg.Convention.GuardPrefix = prefixFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
