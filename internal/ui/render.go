package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/monaco/internal/dashboard"
)

// State constants (matching app.State)
const (
	StateDashboard = iota
	StateFilter
	StateHelp
)

// Focus constants (matching app.Focus)
const (
	FocusRankings = iota
	FocusGoals
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State  int
	View   dashboard.View
	Styles Styles

	// Visible rows as indexes into View.Rankings and View.Goals.
	// Nil shows every row.
	RankingIndexes []int
	GoalIndexes    []int

	// Interactive draws the cursor and the footer.
	Interactive  bool
	Focus        int
	Cursor       int
	ShowDetail   bool
	ShowScores   bool
	ShowHelp     bool
	FilterInput  string
	FilterValue  string
	Status       string
	Err          error
	HelpSections []HelpSection

	Width  int
	Height int
}

// MinWidth is the absolute minimum width we try to support.
const MinWidth = 40

// DefaultWidth is used for non-interactive output when the width is unknown.
const DefaultWidth = 80

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Width < MinWidth {
		p.Width = MinWidth
	}

	switch p.State {
	case StateHelp:
		return renderHelp(p)
	default:
		return renderDashboard(p)
	}
}

// RenderStatic renders the dashboard once, without cursor or footer.
func RenderStatic(view dashboard.View, styles Styles, width int) string {
	return Render(RenderParams{
		State:      StateDashboard,
		View:       view,
		Styles:     styles,
		ShowScores: true,
		Width:      width,
	})
}

// renderDashboard renders the banner and both cards.
func renderDashboard(p RenderParams) string {
	s := p.Styles
	var sections []string

	sections = append(sections, renderBanner(p))

	if p.Interactive && p.State == StateFilter {
		sections = append(sections, s.Input.Width(p.Width-4).Render(p.FilterInput))
	}

	rankings := NewCard(s, p.Width)
	sections = append(sections, rankings.Render(
		s.Icon.Render(SymbolRankings)+" "+dashboard.RankingsTitle,
		renderRankings(p, rankings.InnerWidth()),
	))

	goals := NewCard(s, p.Width)
	sections = append(sections, goals.Render(
		s.Icon.Render(SymbolGoals)+" "+dashboard.GoalsTitle,
		renderGoals(p, goals.InnerWidth()),
	))

	if p.Interactive {
		sections = append(sections, renderFooter(p))
	}

	return strings.Join(sections, "\n")
}

// renderBanner renders the logo block and the heading.
func renderBanner(p RenderParams) string {
	s := p.Styles
	logo := s.Logo.Render(SymbolLogo + " " + dashboard.Brand)
	heading := s.Heading.Render(p.View.Description)
	return lipgloss.JoinHorizontal(lipgloss.Center, logo, "  ", heading) + "\n"
}

// renderRankings renders the visible ranking rows.
func renderRankings(p RenderParams, width int) string {
	indexes := visible(p.RankingIndexes, len(p.View.Rankings))
	if len(indexes) == 0 {
		return p.Styles.Muted.Render(emptyText(p, "No rankings."))
	}

	var lines []string
	for pos, idx := range indexes {
		row := p.View.Rankings[idx]
		selected := p.Interactive && p.Focus == FocusRankings && pos == p.Cursor
		lines = append(lines, renderRankingRow(p, row, selected, width))
		if selected && p.ShowDetail {
			lines = append(lines, renderRankingDetail(p, row))
		}
	}
	return strings.Join(lines, "\n")
}

// renderRankingRow renders "#1  Alpha Team ........ 95 ↑".
func renderRankingRow(p RenderParams, row dashboard.RankingRow, selected bool, width int) string {
	s := p.Styles

	right := s.Trend(row.Tone).Render(row.Glyph)
	if p.ShowScores {
		right = s.Score.Render(strconv.Itoa(row.Score)) + " " + right
	}

	prefix := cursorPrefix(p, selected)
	ordinal := s.Ordinal.Render(fmt.Sprintf("%-4s", row.Label))
	nameWidth := width - lipgloss.Width(prefix) - lipgloss.Width(ordinal) - lipgloss.Width(right) - 1
	team := ansi.Truncate(row.Team, max(nameWidth, 1), "…")
	if selected {
		team = s.Selected.Render(team)
	} else {
		team = s.Text.Render(team)
	}

	return justify(prefix+ordinal+team, right, width)
}

// renderGoals renders the visible goal rows.
func renderGoals(p RenderParams, width int) string {
	indexes := visible(p.GoalIndexes, len(p.View.Goals))
	if len(indexes) == 0 {
		return p.Styles.Muted.Render(emptyText(p, "No goals."))
	}

	var lines []string
	for pos, idx := range indexes {
		row := p.View.Goals[idx]
		selected := p.Interactive && p.Focus == FocusGoals && pos == p.Cursor
		lines = append(lines, renderGoalRow(p, row, selected, width))
		if selected && p.ShowDetail {
			lines = append(lines, renderGoalDetail(p, row))
		}
	}
	return strings.Join(lines, "\n")
}

// renderGoalRow renders the title line with icon and badge, then the due line.
func renderGoalRow(p RenderParams, row dashboard.GoalRow, selected bool, width int) string {
	s := p.Styles

	prefix := cursorPrefix(p, selected)
	icon := s.GoalIcon(row.IconTone).Render(row.Icon) + " "
	badge := s.Badge(row.BadgeTone).Render(row.Badge)

	titleWidth := width - lipgloss.Width(prefix) - lipgloss.Width(icon) - lipgloss.Width(badge) - 1
	title := ansi.Truncate(row.Title, max(titleWidth, 1), "…")
	if selected {
		title = s.Selected.Render(title)
	} else {
		title = s.Text.Render(title)
	}

	indent := strings.Repeat(" ", lipgloss.Width(prefix)+lipgloss.Width(icon))
	due := indent + s.Subtext.Render(ansi.Truncate(row.DueText, max(width-len(indent), 1), "…"))

	return justify(prefix+icon+title, badge, width) + "\n" + due
}

func renderRankingDetail(p RenderParams, row dashboard.RankingRow) string {
	return renderDetail(p, []string{
		fmt.Sprintf("ID:    %d", row.ID),
		fmt.Sprintf("Score: %d", row.Score),
		fmt.Sprintf("Trend: %s", trendText(row)),
	})
}

// trendText shows the trend as the data wrote it.
func trendText(row dashboard.RankingRow) string {
	if row.TrendText == "" {
		return "(none)"
	}
	return row.TrendText
}

func renderGoalDetail(p RenderParams, row dashboard.GoalRow) string {
	return renderDetail(p, []string{
		fmt.Sprintf("ID:       %d", row.ID),
		fmt.Sprintf("Deadline: %s", row.Deadline),
		fmt.Sprintf("Status:   %s", row.Badge),
	})
}

// renderDetail renders the expanded detail panel for the selected row.
func renderDetail(p RenderParams, lines []string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(p.Styles.Palette.Muted)).
		Padding(0, 1).
		MarginLeft(6)
	return box.Render(p.Styles.Muted.Render(strings.Join(lines, "\n")))
}

// renderFooter renders the status line and key help.
func renderFooter(p RenderParams) string {
	s := p.Styles
	var b strings.Builder

	b.WriteString(s.Divider.Render(strings.Repeat(SymbolDivider, p.Width)) + "\n")

	if p.Err != nil {
		b.WriteString(s.Error.Render("Error: "+p.Err.Error()) + "\n")
	} else if p.Status != "" {
		b.WriteString(s.Muted.Render(p.Status) + "\n")
	}

	if !p.ShowHelp {
		return strings.TrimSuffix(b.String(), "\n")
	}

	var helpText string
	if p.State == StateFilter {
		helpText = "enter apply • esc clear"
	} else {
		helpText = compactHelp(
			"tab switch • ↑/↓ move • / filter • i details • e export pdf • ? help • q quit",
			"tab•↑/↓•/•i•e•?•q",
			p.Width,
		)
	}
	b.WriteString(s.Help.Render(helpText))
	return b.String()
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	s := p.Styles
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(s.Title.Render("HELP") + "\n")
	b.WriteString(s.Divider.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for i, section := range p.HelpSections {
		b.WriteString(s.Text.Render(section.Title) + "\n")
		b.WriteString(s.Divider.Render(strings.Repeat(SymbolDivider, min(40, contentWidth))) + "\n")
		for _, binding := range section.Bindings {
			b.WriteString(s.Muted.Render("  "+fmt.Sprintf("%-10s", binding.Keys)) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + s.Divider.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(s.Help.Render("Press any key to close"))

	return s.Panel.Width(p.Width - 2).Render(b.String())
}

// visible returns indexes, or every index below n when indexes is nil.
func visible(indexes []int, n int) []int {
	if indexes != nil {
		return indexes
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	return all
}

func emptyText(p RenderParams, fallback string) string {
	if p.FilterValue != "" {
		return "No matches."
	}
	return fallback
}

func cursorPrefix(p RenderParams, selected bool) string {
	if !p.Interactive {
		return ""
	}
	if selected {
		return p.Styles.Selected.Render(SymbolCursor + " ")
	}
	return "  "
}

// justify places left and right at opposite ends of a line of width cells.
func justify(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 80 {
		return full
	}
	return compact
}
