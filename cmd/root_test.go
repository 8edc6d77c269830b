package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hdrlint/internal/domain"
	domainmocks "github.com/mouse-blink/hdrlint/internal/domain/mocks"
	m "github.com/mouse-blink/hdrlint/internal/model"
)

// newTestRootCmd builds a fresh command tree wired to a mock workflow.
func newTestRootCmd(t *testing.T) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(newScanCmd(), newCheckCmd(), newModulesCmd(), newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hdrlint.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRootCmd_ScansAllModulesByDefault(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("Scan", mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return len(args.Modules) == 0 &&
			args.Parallel == 1 &&
			!args.FailFast &&
			len(args.Exclude) == 0 &&
			args.Report == "" &&
			args.Config.IncludeDir == "light_mat" &&
			args.Config.Convention.GuardPrefix == "LIGHTMAT"
	})).Return(nil).Once()

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ModulesAndFlags(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("Scan", mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return assert.ObjectsAreEqual([]string{"common", "matrix"}, args.Modules) &&
			args.Parallel == 3 &&
			args.FailFast &&
			assert.ObjectsAreEqual([]string{"internal/*", "*_fwd.h"}, args.Exclude) &&
			args.Report == m.Path("out/report.json") &&
			args.Verbosity == 2 &&
			args.Config.Root == "/src/lib" &&
			args.Config.Convention.GuardPrefix == "LMAT"
	})).Return(nil).Once()

	cmd.SetArgs([]string{
		"-vv", "--root", "/src/lib", "--prefix", "LMAT",
		"-p", "3", "--fail-fast", "-x", "internal/*", "--exclude", "*_fwd.h",
		"--report", "out/report.json",
		"common", "matrix",
	})
	require.NoError(t, cmd.Execute())
}

func TestScanCmd_ConfigFileAndOverrides(t *testing.T) {
	cfgPath := writeConfigFile(t, `
root = "/repo"
modules = ["common"]

[scan]
parallel = 4
exclude = ["*_fwd.h"]
report = "cfg.yaml"
`)

	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("Scan", mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return args.Parallel == 4 &&
			assert.ObjectsAreEqual([]string{"*_fwd.h", "detail.h"}, args.Exclude) &&
			args.Report == m.Path("cfg.yaml") &&
			args.Config.Root == "/repo" &&
			args.Config.Modules == nil &&
			args.Config.ModulesFile == "mods.lst"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"scan", "--config", cfgPath, "--modules-file", "mods.lst", "-x", "detail.h"})
	require.NoError(t, cmd.Execute())
}

func TestScanCmd_MissingExplicitConfig(t *testing.T) {
	cmd, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"scan", "--config", filepath.Join(t.TempDir(), "missing.toml")})
	err := cmd.Execute()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanCmd_InvalidPrefix(t *testing.T) {
	cmd, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"scan", "--prefix", "LIGHT MAT"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guard_prefix")
}

func TestScanCmd_PropagatesViolations(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("Scan", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: 2 file(s)", domain.ErrViolations)).Once()

	cmd.SetArgs([]string{"scan"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrViolations)
}

func TestCheckCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"a.h", "include/b.h"}, args.Paths) &&
			args.Config.Convention.GuardPrefix == "PREFIX"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"check", "--prefix", "PREFIX", "a.h", "include/b.h"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_RequiresPaths(t *testing.T) {
	cmd, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"check"})
	assert.Error(t, cmd.Execute())
}

func TestModulesCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("Modules", mock.Anything, mock.MatchedBy(func(args domain.ModulesArgs) bool {
		return args.Config.IncludeDir == "include"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"modules", "--include-dir", "include"})
	require.NoError(t, cmd.Execute())
}

func TestModulesCmd_RejectsArgs(t *testing.T) {
	cmd, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"modules", "extra"})
	assert.Error(t, cmd.Execute())
}

func TestModulesCmd_PropagatesErrors(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	boom := errors.New("layout broken")
	mockWorkflow.On("Modules", mock.Anything, mock.Anything).Return(boom).Once()

	cmd.SetArgs([]string{"modules"})
	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestViewCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{
		Report:    "out/report.json",
		Verbosity: 1,
	}).Return(nil).Once()

	cmd.SetArgs([]string{"view", "-v", "out/report.json"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresReport(t *testing.T) {
	cmd, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"view"})
	assert.Error(t, cmd.Execute())
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "hdrlint [modules...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "root", "include-dir", "modules-file", "prefix", "verbose"} {
		assert.NotNilf(t, cmd.PersistentFlags().Lookup(name), "missing --%s flag", name)
	}

	for _, name := range []string{"parallel", "fail-fast", "exclude", "report"} {
		assert.NotNilf(t, cmd.Flags().Lookup(name), "missing --%s flag", name)
	}
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, workflow)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["scan"])
	assert.True(t, names["check"])
	assert.True(t, names["modules"])
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"a.h", "b/c.h"}, parsePaths([]string{"a.h", "b/c.h"}))
	assert.Empty(t, parsePaths(nil))
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		rootCmd = &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		rootCmd.SetArgs([]string{})

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoErrorf(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		rootCmd = &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("command failed")
			},
		}
		rootCmd.SetArgs([]string{})

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.Truef(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.Contains(string(output), "command failed"), "output: %s", output)
}

func TestRootCmd_ModuleNamesNextToSubcommands(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("Scan", mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return assert.ObjectsAreEqual([]string{"linalg"}, args.Modules)
	})).Return(nil).Once()

	cmd.SetArgs([]string{"linalg"})
	require.NoError(t, cmd.Execute())
}
