package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/schemescope/internal/controller"
	"github.com/mouse-blink/schemescope/internal/domain"
	m "github.com/mouse-blink/schemescope/internal/model"
)

const editLongDescription = `Open a source file next to its color scheme. The scheme rule matching
the scope under the cursor is selected and follows the cursor as it moves.

Keys (configurable under keys.*):
  ctrl+t   open or close the scheme
  ctrl+n   next matching selector
  ctrl+p   previous matching selector
  tab      switch pane    s  show scope    :  go to line    q  quit`

var editSchemeFlag string
var editLineFlag int
var editColumnFlag int

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "edit <source>",
		Short:       "Edit a color scheme alongside a source file",
		Long:        editLongDescription,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{ownsTerminalAnnotation: "true"},
		RunE: func(_ *cobra.Command, args []string) error {
			scheme := editSchemeFlag
			if scheme == "" {
				scheme = cfg.Scheme
			}

			return workflow.Edit(domain.EditArgs{
				Source: m.Path(args[0]),
				Scheme: m.Path(scheme),
				Line:   editLineFlag,
				Column: editColumnFlag,
				Keys: controller.EditorKeys{
					Next:   cfg.Keys.Next,
					Prev:   cfg.Keys.Prev,
					Toggle: cfg.Keys.Toggle,
				},
				Ratio: cfg.Layout.Ratio,
			})
		},
	}
	cmd.Flags().StringVarP(&editSchemeFlag, "scheme", "s", "", "color scheme to edit (default from config)")
	cmd.Flags().IntVarP(&editLineFlag, "line", "l", 1, "1-based line to place the cursor on")
	cmd.Flags().IntVarP(&editColumnFlag, "column", "c", 1, "1-based column to place the cursor on")

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}
