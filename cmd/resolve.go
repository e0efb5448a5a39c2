package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/schemescope/internal/domain"
	m "github.com/mouse-blink/schemescope/internal/model"
)

const resolveLongDescription = `Rank the selectors of one or more color schemes that match a scope.

The scope is given directly with --scope ("source.go comment.line.double-slash.go")
or read from a source file at --line and --column.`

var resolveSchemeFlags []string
var resolveScopeFlag string
var resolveSourceFlag string
var resolveLineFlag int
var resolveColumnFlag int
var resolveReportFlag string
var resolveParallelFlag int

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Rank the scheme selectors matching a scope",
		Long:  resolveLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Resolve(domain.ResolveArgs{
				Schemes:  schemesOrDefault(resolveSchemeFlags),
				Scope:    resolveScopeFlag,
				Source:   m.Path(resolveSourceFlag),
				Line:     resolveLineFlag,
				Column:   resolveColumnFlag,
				Report:   m.Path(resolveReportFlag),
				Parallel: parallelism(resolveParallelFlag),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&resolveSchemeFlags, "scheme", "s", nil, "color scheme file or directory (can be repeated)")
	cmd.Flags().StringVar(&resolveScopeFlag, "scope", "", "space separated scope name, outermost first")
	cmd.Flags().StringVar(&resolveSourceFlag, "source", "", "source file to read the scope from")
	cmd.Flags().IntVarP(&resolveLineFlag, "line", "l", 1, "1-based line in --source")
	cmd.Flags().IntVarP(&resolveColumnFlag, "column", "c", 1, "1-based column in --source")
	cmd.Flags().StringVarP(&resolveReportFlag, "report", "r", "", "save the result to this YAML report")
	cmd.Flags().IntVarP(&resolveParallelFlag, "parallel", "p", 0, "number of schemes resolved in parallel (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
