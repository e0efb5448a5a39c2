package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/schemescope/internal/domain"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report>",
		Short: "View a saved resolution report",
		Long:  "View a report written by resolve --report. Schemes edited since then are marked stale.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
