package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/config"
	controllermocks "github.com/mouse-blink/schemescope/internal/controller/mocks"
	"github.com/mouse-blink/schemescope/internal/domain"
	domainmocks "github.com/mouse-blink/schemescope/internal/domain/mocks"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// isolate keeps user and working directory config files out of the test.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	return dir
}

// useWorkflow swaps the global workflow for the duration of the test.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() { workflow = originalWorkflow })
}

func newTestRoot(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var errBuf bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&errBuf)

	return cmd, &errBuf
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "schemescope", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "log-level", "log-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportStore)

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"edit", "list", "resolve", "view"})
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "scheme: Mono.tmTheme\nparallel: 3\n")

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Resolve(mock.MatchedBy(func(args domain.ResolveArgs) bool {
		return len(args.Schemes) == 1 && args.Schemes[0] == m.Path("Mono.tmTheme") && args.Parallel == 3
	})).Return(nil)

	cmd, _ := newTestRoot(newResolveCmd())
	cmd.SetArgs([]string{"--config", path, "resolve", "--scope", "source.go"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, path, cfg.File)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	dir := isolate(t)

	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yaml"), "list"})
	assert.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
}

func TestRootCmd_LogFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "dedupe: true\n")
	logFile := filepath.Join(dir, "logs", "schemescope.log")

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)
	mockWorkflow.EXPECT().List(mock.Anything).Return(nil)

	cmd, errBuf := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"--config", path, "--log-level", "debug", "--log-file", logFile, "list"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "config loaded")
	assert.Empty(t, errBuf.String())
	assert.True(t, cfg.Dedupe)
}

func TestRootCmd_BuildsWorkflow(t *testing.T) {
	isolate(t)
	useWorkflow(t, nil)

	mockUI := controllermocks.NewMockUI(t)
	originalUI := ui
	ui = mockUI

	t.Cleanup(func() { ui = originalUI })

	mockUI.EXPECT().DisplaySchemes(mock.MatchedBy(func(infos []m.SchemeInfo) bool {
		return len(infos) == 0
	})).Return(nil)

	cmd, _ := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	assert.NotNil(t, workflow)
}

func TestHelpers(t *testing.T) {
	isolate(t)

	original := cfg
	t.Cleanup(func() { cfg = original })

	cfg = &config.Config{Parallel: 6, Scheme: "Dark.hidden-tmTheme"}

	assert.Equal(t, 2, parallelism(2))
	assert.Equal(t, 6, parallelism(0))
	assert.Equal(t, []m.Path{"Dark.hidden-tmTheme"}, schemesOrDefault(nil))
	assert.Equal(t, []m.Path{"a", "b"}, schemesOrDefault([]string{"a", "b"}))
	assert.Empty(t, parsePaths(nil))
}
