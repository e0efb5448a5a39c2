package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/schemescope/internal/domain"
)

const listLongDescription = `List color scheme files with the number of rule entries and selectors
each one defines. Without paths the current directory is searched.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listParallelFlag int

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List color schemes and their rules",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				Paths:    parsePaths(args),
				Parallel: parallelism(listParallelFlag),
			})
		},
	}
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 0, "number of schemes read in parallel (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
