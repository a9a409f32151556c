package dashboard

import "fmt"

// Glyphs used by derived rows.
const (
	GlyphUp      = "↑"
	GlyphDown    = "↓"
	GlyphNeutral = "→"
	IconSuccess  = "✓"
	IconFailure  = "✗"
)

// Badge texts.
const (
	BadgeCompleted  = "Completed"
	BadgeInProgress = "In Progress"
)

// RankingRow is the display form of a Ranking.
type RankingRow struct {
	Ordinal int
	Label   string
	ID      int
	Team    string
	Score   int
	Trend   Trend
	// TrendText is the trend as written in the data.
	TrendText string
	Glyph     string
	Tone      Tone
}

// GoalRow is the display form of a Goal.
type GoalRow struct {
	ID        int
	Title     string
	Deadline  string
	DueText   string
	Completed bool
	Icon      string
	IconTone  Tone
	Badge     string
	BadgeTone Tone
}

// View is everything a surface needs to draw the dashboard.
type View struct {
	Title       string
	Description string
	Rankings    []RankingRow
	Goals       []GoalRow
}

// TrendIndicator returns the glyph and tone for t.
func TrendIndicator(t Trend) (string, Tone) {
	switch t {
	case TrendUp:
		return GlyphUp, TonePositive
	case TrendDown:
		return GlyphDown, ToneNegative
	case TrendStable, TrendUnknown:
		return GlyphNeutral, ToneNeutral
	default:
		return GlyphNeutral, ToneNeutral
	}
}

// DeriveRanking builds the row for r at zero-based position index.
func DeriveRanking(index int, r Ranking) RankingRow {
	trend := r.TrendKind()
	glyph, tone := TrendIndicator(trend)
	ordinal := index + 1
	return RankingRow{
		Ordinal:   ordinal,
		Label:     fmt.Sprintf("#%d", ordinal),
		ID:        r.ID,
		Team:      r.Team,
		Score:     r.Score,
		Trend:     trend,
		TrendText: r.Trend,
		Glyph:     glyph,
		Tone:      tone,
	}
}

// DeriveGoal builds the row for g.
func DeriveGoal(g Goal) GoalRow {
	row := GoalRow{
		ID:        g.ID,
		Title:     g.Title,
		Deadline:  g.Deadline,
		DueText:   "Due: " + g.Deadline,
		Completed: g.Completed,
	}
	if g.Completed {
		row.Icon, row.IconTone = IconSuccess, TonePositive
		row.Badge, row.BadgeTone = BadgeCompleted, TonePositive
	} else {
		row.Icon, row.IconTone = IconFailure, ToneAlert
		row.Badge, row.BadgeTone = BadgeInProgress, ToneNeutral
	}
	return row
}

// RankingRows derives one row per ranking, in collection order.
func RankingRows(rankings []Ranking) []RankingRow {
	rows := make([]RankingRow, len(rankings))
	for i, r := range rankings {
		rows[i] = DeriveRanking(i, r)
	}
	return rows
}

// GoalRows derives one row per goal, in collection order.
func GoalRows(goals []Goal) []GoalRow {
	rows := make([]GoalRow, len(goals))
	for i, g := range goals {
		rows[i] = DeriveGoal(g)
	}
	return rows
}

// Build derives the full View from p.
func Build(p Provider) View {
	return View{
		Title:       Title,
		Description: Description,
		Rankings:    RankingRows(p.Rankings()),
		Goals:       GoalRows(p.Goals()),
	}
}
