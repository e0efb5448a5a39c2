package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/mouse-blink/schemescope/internal/domain/engine"
	m "github.com/mouse-blink/schemescope/internal/model"
)

var (
	tuiTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	tuiLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tuiAccentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	tuiWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tuiHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true).Padding(0, 1)
	tuiCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplayResolution prints the ranked selectors, switching to a browsable
// list when they do not fit on screen.
func (t *TUI) DisplayResolution(reports []m.Report) error {
	model := newMatchesModel(reports)

	if width, height, ok := t.size(); ok {
		model.width = width
		model.height = height
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, renderReports(reports))
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySchemes prints the scheme files found with their rule counts.
func (t *TUI) DisplaySchemes(infos []m.SchemeInfo) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(t.output, tuiLabelStyle.Render("no color schemes found"))
		return err
	}

	rows := make([][]string, 0, len(infos))
	rules, selectors := 0, 0

	for _, info := range infos {
		if info.Err != nil {
			rows = append(rows, []string{string(info.Path), tuiErrorStyle.Render("error"), info.Err.Error()})
			continue
		}

		rows = append(rows, []string{string(info.Path), fmt.Sprintf("%d", info.Rules), fmt.Sprintf("%d", info.Selectors)})
		rules += info.Rules
		selectors += info.Selectors
	}

	tbl := newTable("Scheme", "Rules", "Selectors").Rows(rows...)

	_, err := fmt.Fprintf(t.output, "%s\n%s\n%s\n",
		tuiTitleStyle.Render("Color Schemes"),
		tbl.String(),
		tuiLabelStyle.Render(fmt.Sprintf("%d schemes, %d rules, %d selectors", len(infos), rules, selectors)),
	)

	return err
}

// Edit runs the interactive editor until the user quits.
func (t *TUI) Edit(args EditorArgs) error {
	host := newEditorHost(args.FS, args.Scopes, args.Scheme)

	source, err := host.open(args.Source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}

	host.placeCursor(source, args.Line, args.Column)
	host.Drain()

	session := engine.NewSession(host, args.Resolver, args.Logger)
	model := newEditorModel(host, session, args.Keys, args.Ratio, args.Logger)

	if width, height, ok := t.size(); ok {
		model = model.resize(width, height)
	}

	program := tea.NewProgram(model,
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) size() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiAccentStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}

			return tuiCellStyle
		})
}

func renderReports(reports []m.Report) string {
	var b strings.Builder

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "%s %s\n", tuiTitleStyle.Render("Scheme"), report.Scheme)

		if report.Err != nil {
			fmt.Fprintf(&b, "%s %v\n", tuiErrorStyle.Render("error:"), report.Err)
			continue
		}

		if report.Stale {
			fmt.Fprintln(&b, tuiWarnStyle.Render("stale: the scheme changed after this report was written"))
		}

		fmt.Fprintf(&b, "%s %s\n", tuiLabelStyle.Render("scope"), tuiAccentStyle.Render(report.Chain.Pretty()))

		if len(report.Matches) == 0 {
			fmt.Fprintln(&b, tuiLabelStyle.Render("no matching selectors"))
			continue
		}

		rows := make([][]string, 0, len(report.Matches))
		for _, match := range report.Matches {
			rows = append(rows, []string{
				fmt.Sprintf("%d", match.Rank),
				fmt.Sprintf("%d", match.Score),
				match.Selector,
				match.Segment,
				fmt.Sprintf("%d:%d", match.Line, match.Column),
			})
		}

		b.WriteString(newTable("#", "Score", "Selector", "Segment", "Line:Col").Rows(rows...).String())
		b.WriteString("\n")
	}

	return b.String()
}
