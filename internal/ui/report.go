package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/monaco/internal/dashboard"
	"github.com/henri123lemoine/monaco/internal/gameroom"
)

// ReportHeading is the banner heading of the GameRoom report.
const ReportHeading = "GameRoom Analytics"

// RenderReport renders a GameRoom report as a column of cards.
func RenderReport(r gameroom.Report, s Styles, width int) string {
	if width < MinWidth {
		width = MinWidth
	}

	logo := s.Logo.Render(SymbolLogo + " " + dashboard.Brand)
	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, logo, "  ", s.Heading.Render(ReportHeading)) + "\n",
		reportCard(s, width, "Monthly Growth", growthTable(r.Growth)),
		reportCard(s, width, "Tickets by Game", gameTotalsTable(r.GameTotals)),
		reportCard(s, width, "Tickets by Game and Month", gameMonthsTable(r.GameMonths)),
		reportCard(s, width, "Matches and Tickets by Event", eventsTable(r.Events)),
		reportCard(s, width, "Paid Orders by Event", ordersTable(r.Orders)),
		reportCard(s, width, "Order Values by Event", orderValuesTable(r.OrderValues)),
		reportCard(s, width, "Heavy Users", heavyUsersTable(r.HeavyUsers)),
	}
	if r.Event != nil {
		sections = append(sections, reportCard(s, width, "Top Players: "+r.Event.Event, eventPlayersTable(r.Event.Players)))
	}
	return strings.Join(sections, "\n")
}

// reportCard draws report sections in the accent color so they read apart
// from the dashboard cards.
func reportCard(s Styles, width int, title string, t table) string {
	card := NewCard(s, width).Layer(
		lipgloss.NewStyle().BorderForeground(s.Icon.GetForeground()).Padding(0, 1),
		lipgloss.NewStyle(),
		lipgloss.NewStyle().Foreground(s.Icon.GetForeground()),
		lipgloss.NewStyle(),
	)
	return card.Render(title, t.render(s, card.InnerWidth()))
}

// table is a header row plus data rows. The first column is left aligned,
// the rest right aligned.
type table struct {
	headers []string
	rows    [][]string
}

func (t table) render(s Styles, width int) string {
	if len(t.rows) == 0 {
		return s.Muted.Render("No data.")
	}

	widths := make([]int, len(t.headers))
	for _, row := range append([][]string{t.headers}, t.rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := strings.Repeat(" ", widths[i]-ansi.StringWidth(cell))
			if i == 0 {
				parts[i] = cell + pad
			} else {
				parts[i] = pad + cell
			}
		}
		return ansi.Truncate(strings.Join(parts, "  "), width, "…")
	}

	lines := []string{s.Subtext.Render(line(t.headers))}
	for _, row := range t.rows {
		lines = append(lines, s.Text.Render(line(row)))
	}
	return strings.Join(lines, "\n")
}

func growthTable(g gameroom.Growth) table {
	type counts struct{ matches, tickets, users int64 }
	byMonth := map[string]*counts{}
	var months []string
	get := func(month string) *counts {
		if c, ok := byMonth[month]; ok {
			return c
		}
		c := &counts{}
		byMonth[month] = c
		months = append(months, month)
		return c
	}
	for _, v := range g.Matches {
		get(v.Month).matches = v.Value
	}
	for _, v := range g.TicketAmount {
		get(v.Month).tickets = v.Value
	}
	for _, v := range g.Users {
		get(v.Month).users = v.Value
	}
	slices.Sort(months)

	t := table{headers: []string{"Month", "Matches", "Tickets", "New users"}}
	for _, m := range months {
		c := byMonth[m]
		t.rows = append(t.rows, []string{m, itoa(c.matches), itoa(c.tickets), itoa(c.users)})
	}
	return t
}

func gameTotalsTable(totals []gameroom.GameTotal) table {
	t := table{headers: []string{"Game", "Tickets"}}
	for _, g := range totals {
		t.rows = append(t.rows, []string{g.Game, itoa(g.Amount)})
	}
	return t
}

func gameMonthsTable(gm gameroom.GameMonthTable) table {
	t := table{headers: []string{"Month"}}
	for _, id := range gm.GameIDs {
		t.headers = append(t.headers, gameroom.GameName(id))
	}
	for _, row := range gm.Rows {
		cells := []string{row.Month}
		for _, a := range row.Amounts {
			cells = append(cells, itoa(a))
		}
		t.rows = append(t.rows, cells)
	}
	return t
}

func eventsTable(events []gameroom.EventSummary) table {
	t := table{headers: []string{"Event", "Start", "End", "Matches", "Tickets", "Per day"}}
	for _, e := range events {
		t.rows = append(t.rows, []string{
			e.Name, day(e.Start), day(e.End),
			strconv.Itoa(e.Matches), itoa(e.Tickets), fmt.Sprintf("%.2f", e.MatchesPerDay),
		})
	}
	return t
}

func ordersTable(orders []gameroom.OrderSummary) table {
	t := table{headers: []string{"Event", "Start", "End", "Orders", "Amount"}}
	for _, o := range orders {
		t.rows = append(t.rows, []string{
			o.Name, day(o.Start), day(o.End),
			strconv.Itoa(o.Orders), fmt.Sprintf("%.2f", o.Amount),
		})
	}
	return t
}

func orderValuesTable(values []gameroom.OrderValueCount) table {
	t := table{headers: []string{"Event", "Value", "Orders"}}
	for _, v := range values {
		t.rows = append(t.rows, []string{v.Event, fmt.Sprintf("%.2f", v.Value), strconv.Itoa(v.Count)})
	}
	return t
}

func heavyUsersTable(users []gameroom.PlayerMatches) table {
	t := table{headers: []string{"Player", "Matches"}}
	for i, u := range users {
		t.rows = append(t.rows, []string{fmt.Sprintf("#%d %s", i+1, u.Nickname), strconv.Itoa(u.Matches)})
	}
	return t
}

func eventPlayersTable(players []gameroom.PlayerDay) table {
	t := table{headers: []string{"Player", "Game", "Date", "Matches"}}
	for _, p := range players {
		t.rows = append(t.rows, []string{p.Nickname, p.Game, p.Date, strconv.Itoa(p.Matches)})
	}
	return t
}

func day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.DateOnly)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
