package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/controller"
	"github.com/mouse-blink/schemescope/internal/domain"
	domainmocks "github.com/mouse-blink/schemescope/internal/domain/mocks"
	m "github.com/mouse-blink/schemescope/internal/model"
)

func TestEditCmd_PassesSchemeAndKeys(t *testing.T) {
	isolate(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Edit", mock.MatchedBy(func(args domain.EditArgs) bool {
		return args.Source == m.Path("main.go") &&
			args.Scheme == m.Path("Mono.tmTheme") &&
			args.Line == 5 &&
			args.Column == 1 &&
			args.Keys == controller.EditorKeys{Next: "ctrl+n", Prev: "ctrl+p", Toggle: "ctrl+t"} &&
			args.Ratio == 0.5
	})).Return(nil)

	cmd, _ := newTestRoot(newEditCmd())
	cmd.SetArgs([]string{"edit", "--scheme", "Mono.tmTheme", "-l", "5", "main.go"})
	require.NoError(t, cmd.Execute())
}

func TestEditCmd_ConfigDefaults(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "scheme: Dark.hidden-tmTheme\nkeys:\n  next: alt+n\nlayout:\n  ratio: 0.6\n")

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Edit", mock.MatchedBy(func(args domain.EditArgs) bool {
		return args.Scheme == m.Path("Dark.hidden-tmTheme") &&
			args.Keys.Next == "alt+n" &&
			args.Keys.Prev == "ctrl+p" &&
			args.Ratio == 0.6
	})).Return(nil)

	cmd, errBuf := newTestRoot(newEditCmd())
	cmd.SetArgs([]string{"--config", path, "--log-level", "debug", "edit", "main.go"})
	require.NoError(t, cmd.Execute())

	assert.Empty(t, errBuf.String(), "the editor keeps logs off the terminal")
}

func TestNewEditCmd(t *testing.T) {
	cmd := newEditCmd()

	assert.Equal(t, "true", cmd.Annotations[ownsTerminalAnnotation])
	assert.NotNil(t, cmd.Flags().Lookup("scheme"))
	assert.Error(t, cmd.Args(cmd, nil))
}
