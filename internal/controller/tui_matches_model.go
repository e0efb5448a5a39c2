package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/schemescope/internal/model"
)

// Simple delegate for ranked match items.
type matchDelegate struct {
	offset int
}

func (d matchDelegate) Height() int  { return 1 }
func (d matchDelegate) Spacing() int { return 0 }
func (d matchDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d matchDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	match, ok := item.(matchItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var selectorStyle, scoreStyle, locStyle lipgloss.Style

	var displaySelector string

	width := m.Width() - 22 // rank (4) + score (6) + location (10) + spacing (2)

	if isSelected {
		selectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displaySelector = animateScroll(match.selector, width, d.offset)
	} else {
		selectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displaySelector = truncateToWidth(match.selector, width)
	}

	locStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10).Align(lipgloss.Right)

	line := fmt.Sprintf("%4d%s  %s%s",
		match.rank,
		scoreStyle.Render(fmt.Sprintf("%d", match.score)),
		selectorStyle.Render(displaySelector),
		locStyle.Render(match.location()),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// matchesModel browses the ranked selectors of one or more reports.
type matchesModel struct {
	width        int
	height       int
	reports      []m.Report
	matchList    list.Model
	delegate     matchDelegate
	total        int
	animOffset   int
	lastSelected int
}

func newMatchesModel(reports []m.Report) matchesModel {
	delegate := matchDelegate{}

	items := make([]list.Item, 0)
	for _, report := range reports {
		for _, match := range report.Matches {
			items = append(items, matchItem{
				scheme:   string(report.Scheme),
				rank:     match.Rank,
				score:    match.Score,
				selector: match.Selector,
				segment:  match.Segment,
				line:     match.Line,
				column:   match.Column,
				context:  match.Context,
			})
		}
	}

	matchList := list.New(items, delegate, 80, 20)
	matchList.SetShowPagination(false)
	matchList.SetShowFilter(true)
	matchList.SetShowHelp(false)
	matchList.SetShowTitle(false)
	matchList.SetShowStatusBar(false)
	matchList.FilterInput.Placeholder = "Filter by selector…"

	return matchesModel{
		reports:      reports,
		matchList:    matchList,
		delegate:     delegate,
		total:        len(items),
		lastSelected: 0,
	}
}

// needsPagination reports whether the matches overflow the terminal.
func (m matchesModel) needsPagination() bool {
	return m.height > 0 && m.total > m.listHeight()
}

func (m matchesModel) listHeight() int {
	// title, summary, context box, footer, borders and headers
	return max(m.height-14, 5)
}

func (m matchesModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m matchesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.matchList.SetWidth(m.width - 6)
		m.matchList.SetHeight(m.listHeight())

	case tickMsg:
		if m.matchList.FilterState() == list.Filtering {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.matchList.SetDelegate(m.delegate)

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if m.matchList.FilterState() != list.Filtering && (msg.String() == "q" || msg.String() == "ctrl+c") {
			return m, tea.Quit
		}

		m.matchList, cmd = m.matchList.Update(msg)

		if m.matchList.Index() != m.lastSelected {
			m.lastSelected = m.matchList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.matchList.SetDelegate(m.delegate)
		}
	}

	return m, cmd
}

func (m matchesModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	scope := ""
	if len(m.reports) > 0 {
		scope = m.reports[0].Chain.Pretty()
	}

	title := titleStyle.Render("Scheme Scope Matches")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Scope: %s   Matches: %s   Schemes: %s",
		accentStyle.Render(scope),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.reports))),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		m.renderContext(),
		footer,
	)
}

func (m matchesModel) renderTable() string {
	listWidth := max(m.width-6, 20)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%4s%6s  %s", "#", "Score", "Selector"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.matchList.View(),
		),
	)
}

// renderContext shows where the selected match sits in its scheme.
func (m matchesModel) renderContext() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Margin(0, 1).
		Padding(0, 1).
		Width(max(m.width-4, 20))

	item, ok := m.matchList.SelectedItem().(matchItem)
	if !ok {
		return box.Render("no match selected")
	}

	width := max(m.width-8, 10)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		truncateToWidth(fmt.Sprintf("%s %s:%s", labelStyle.Render("in"), item.scheme, item.location()), width),
		truncateToWidth(fmt.Sprintf("%s %s", labelStyle.Render("for"), item.segment), width),
		truncateToWidth(item.context, width),
	))
}
