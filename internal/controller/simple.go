package controller

import (
	"bytes"
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/schemescope/internal/model"
)

// SimpleUI implements UI using cobra Command's output and plain tables.
type SimpleUI struct {
	cmd   *cobra.Command
	color aurora.Aurora
}

// NewSimpleUI creates a new SimpleUI. Color escapes are written only when
// color is true.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: aurora.NewAurora(color)}
}

// DisplayResolution prints one table of ranked selectors per scheme.
func (s *SimpleUI) DisplayResolution(reports []m.Report) error {
	for i, report := range reports {
		if i > 0 {
			s.printf("\n")
		}

		s.printf("%s %s\n", s.color.Bold("scheme:"), report.Scheme)

		if report.Err != nil {
			s.printf("%s %v\n", s.color.Red("error:"), report.Err)
			continue
		}

		if report.Stale {
			s.printf("%s\n", s.color.Yellow("stale: the scheme changed after this report was written"))
		}

		s.printf("%s %s\n", s.color.Bold("scope:"), report.Chain.Pretty())

		if len(report.Matches) == 0 {
			s.printf("no matching selectors\n")
			continue
		}

		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"#", "Score", "Selector", "Segment", "Line:Col"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
		})

		for _, match := range report.Matches {
			table.Append([]string{
				fmt.Sprintf("%d", match.Rank),
				fmt.Sprintf("%d", match.Score),
				s.color.Cyan(match.Selector).String(),
				match.Segment,
				fmt.Sprintf("%d:%d", match.Line, match.Column),
			})
		}

		table.Render()
		s.printf("%s", tableBuffer.String())
	}

	return nil
}

// DisplaySchemes prints the scheme files found with their rule counts.
func (s *SimpleUI) DisplaySchemes(infos []m.SchemeInfo) error {
	if len(infos) == 0 {
		s.printf("no color schemes found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scheme", "Rules", "Selectors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	rules, selectors := 0, 0

	for _, info := range infos {
		if info.Err != nil {
			table.Append([]string{string(info.Path), s.color.Red("error").String(), info.Err.Error()})
			continue
		}

		table.Append([]string{string(info.Path), fmt.Sprintf("%d", info.Rules), fmt.Sprintf("%d", info.Selectors)})

		rules += info.Rules
		selectors += info.Selectors
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Schemes %d", len(infos)),
		fmt.Sprintf("%d", rules),
		fmt.Sprintf("%d", selectors),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// Edit is not available without a terminal.
func (s *SimpleUI) Edit(_ EditorArgs) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
