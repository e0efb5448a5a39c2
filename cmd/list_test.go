package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/domain"
	domainmocks "github.com/mouse-blink/schemescope/internal/domain/mocks"
	m "github.com/mouse-blink/schemescope/internal/model"
)

func TestListCmd_PassesPaths(t *testing.T) {
	isolate(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("List", mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("./schemes/...") &&
			args.Paths[1] == m.Path("Mono.tmTheme") &&
			args.Parallel == 2
	})).Return(nil)

	cmd, _ := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"list", "-p", "2", "./schemes/...", "Mono.tmTheme"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_ParallelFromConfig(t *testing.T) {
	isolate(t)
	t.Setenv("SCHEMESCOPE_PARALLEL", "5")

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("List", mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 0 && args.Parallel == 5
	})).Return(nil)

	cmd, _ := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)

	parallelFlag := cmd.Flags().Lookup("parallel")
	require.NotNil(t, parallelFlag)
	assert.Equal(t, "p", parallelFlag.Shorthand)
}
