package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/chtlcheck/internal/cli/commands"
	"github.com/leapstack-labs/chtlcheck/internal/cli/config"
	"github.com/leapstack-labs/chtlcheck/internal/cli/testutil"
	"github.com/leapstack-labs/chtlcheck/pkg/report"
)

// executeRoot runs the root command in dir with args.
func executeRoot(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Chdir(dir)

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"validate", "rules", "checks", "version", "completion"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "output", "verbose", "log-format", "jobs", "report", "no-report", "disable", "extensions"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRoot_ValidateWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "src", "page.chtl"), testutil.ValidSource)
	testutil.WriteFile(t, filepath.Join(dir, "chtlcheck.yaml"), "inputs:\n  - src\nreport:\n  path: out/report.md\n")

	out, _, err := executeRoot(t, dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "page.chtl")

	_, err = os.Stat(filepath.Join(dir, "out", "report.md"))
	require.NoError(t, err, "report path from the config file is relative to it")
}

func TestRoot_DisableFlag(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "mixed.chtl")
	testutil.WriteFile(t, bad, "class: value = another;\n")

	_, _, err := executeRoot(t, dir, "validate", "--no-report", bad)
	require.ErrorIs(t, err, commands.ErrValidationFailed)

	out, _, err := executeRoot(t, dir, "validate", "--no-report", "--disable", "SE01", bad)
	require.NoError(t, err)
	assert.Contains(t, out, "1/1 valid")

	_, err = os.Stat(filepath.Join(dir, "CHTL_SYNTAX_VALIDATION_REPORT.md"))
	assert.True(t, os.IsNotExist(err), "--no-report must not write the report")
}

func TestRoot_UnknownCheck(t *testing.T) {
	dir := t.TempDir()
	_, _, err := executeRoot(t, dir, "validate", "--disable", "SE42", "x.chtl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown check IDs")
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	_, _, err := executeRoot(t, dir, "validate", "--jobs=-1", "x.chtl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.chtl")
	testutil.WriteFile(t, good, testutil.ValidSource)

	out, errOut, err := executeRoot(t, dir, "validate", "--no-report", "-v", good)
	require.NoError(t, err)
	assert.Contains(t, errOut, "validation complete")
	assert.NotContains(t, out, "validation complete")
}

func TestRoot_OutputFlag(t *testing.T) {
	dir := t.TempDir()
	out, _, err := executeRoot(t, dir, "checks", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"checks"`)
}

func TestRoot_FailedValidationJSONIsClean(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	out, errOut, err := executeRoot(t, dir, "validate", "--no-report", "-o", "json", dir)
	require.ErrorIs(t, err, commands.ErrValidationFailed)
	assert.NotContains(t, errOut, "Usage:")

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep), "stdout must hold only the report")
	assert.Equal(t, 2, rep.Summary.FilesTotal)
	assert.Equal(t, 1, rep.Summary.FilesValid)
}

func TestRoot_VersionJSON(t *testing.T) {
	dir := t.TempDir()
	out, _, err := executeRoot(t, dir, "version", "-o", "json")
	require.NoError(t, err)

	var info commands.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
	assert.Empty(t, info.GitCommit, "unstamped metadata is omitted")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := executeRoot(t, t.TempDir(), "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "chtlcheck")
		})
	}

	_, _, err := executeRoot(t, t.TempDir(), "completion", "tcsh")
	require.Error(t, err)
}
