package dashboard

import (
	"reflect"
	"testing"
)

func TestRankingOrdinalsFollowCollectionOrder(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
	}{
		{"already descending", []int{95, 88, 82, 78}},
		{"ascending", []int{78, 95}},
		{"ties", []int{50, 50, 50}},
		{"negative and unbounded", []int{-10, 1000000, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rankings []Ranking
			for i, s := range tt.scores {
				rankings = append(rankings, Ranking{ID: i + 10, Team: "Team", Score: s, Trend: "stable"})
			}

			rows := RankingRows(rankings)
			if len(rows) != len(tt.scores) {
				t.Fatalf("Expected %d rows, got %d", len(tt.scores), len(rows))
			}
			for i, row := range rows {
				if row.Ordinal != i+1 {
					t.Errorf("Row %d: expected ordinal %d, got %d", i, i+1, row.Ordinal)
				}
				if row.Score != tt.scores[i] {
					t.Errorf("Row %d: expected score %d, got %d (rows were reordered)", i, tt.scores[i], row.Score)
				}
			}
		})
	}
}

func TestRankingLabel(t *testing.T) {
	rows := RankingRows([]Ranking{
		{ID: 7, Team: "Low", Score: 78},
		{ID: 3, Team: "High", Score: 95},
	})

	if rows[0].Label != "#1" || rows[0].Team != "Low" {
		t.Errorf("Expected #1 Low, got %s %s", rows[0].Label, rows[0].Team)
	}
	if rows[1].Label != "#2" || rows[1].Team != "High" {
		t.Errorf("Expected #2 High, got %s %s", rows[1].Label, rows[1].Team)
	}
}

func TestTrendIndicator(t *testing.T) {
	tests := []struct {
		input     string
		wantGlyph string
		wantTone  Tone
	}{
		{"up", GlyphUp, TonePositive},
		{"down", GlyphDown, ToneNegative},
		{"stable", GlyphNeutral, ToneNeutral},
		{"", GlyphNeutral, ToneNeutral},
		{"sideways", GlyphNeutral, ToneNeutral},
		{"UP", GlyphNeutral, ToneNeutral},
		{"Down", GlyphNeutral, ToneNeutral},
		{" up ", GlyphNeutral, ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			row := DeriveRanking(0, Ranking{ID: 1, Team: "Alpha Team", Score: 1, Trend: tt.input})
			if row.Glyph != tt.wantGlyph {
				t.Errorf("Glyph for %q = %q, want %q", tt.input, row.Glyph, tt.wantGlyph)
			}
			if row.Tone != tt.wantTone {
				t.Errorf("Tone for %q = %v, want %v", tt.input, row.Tone, tt.wantTone)
			}
		})
	}
}

func TestTrendIndicatorOutOfRange(t *testing.T) {
	glyph, tone := TrendIndicator(Trend(42))
	if glyph != GlyphNeutral || tone != ToneNeutral {
		t.Errorf("Expected neutral fallback, got %q %v", glyph, tone)
	}
}

func TestParseTrend(t *testing.T) {
	tests := []struct {
		input    string
		expected Trend
	}{
		{"up", TrendUp},
		{"down", TrendDown},
		{"stable", TrendStable},
		{"UP", TrendUnknown},
		{" down ", TrendUnknown},
		{"Stable", TrendUnknown},
		{"", TrendUnknown},
		{"sideways", TrendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseTrend(tt.input); got != tt.expected {
				t.Errorf("ParseTrend(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRankingRowKeepsTrendText(t *testing.T) {
	row := DeriveRanking(0, Ranking{ID: 1, Team: "Alpha Team", Trend: "sideways"})
	if row.Trend != TrendUnknown {
		t.Errorf("Trend = %v, want TrendUnknown", row.Trend)
	}
	if row.TrendText != "sideways" {
		t.Errorf("TrendText = %q, want the text from the data", row.TrendText)
	}
}

func TestGoalRow(t *testing.T) {
	done := DeriveGoal(Goal{ID: 2, Title: "Launch New Product Line", Deadline: "2024-06-30", Completed: true})
	if done.Icon != IconSuccess || done.IconTone != TonePositive {
		t.Errorf("Completed goal: expected success icon, got %q %v", done.Icon, done.IconTone)
	}
	if done.Badge != "Completed" || done.BadgeTone != TonePositive {
		t.Errorf("Completed goal: expected Completed badge, got %q %v", done.Badge, done.BadgeTone)
	}

	open := DeriveGoal(Goal{ID: 1, Title: "Increase Sales by 20%", Deadline: "2024-12-31", Completed: false})
	if open.Icon != IconFailure || open.IconTone != ToneAlert {
		t.Errorf("Open goal: expected failure icon, got %q %v", open.Icon, open.IconTone)
	}
	if open.Badge != "In Progress" || open.BadgeTone != ToneNeutral {
		t.Errorf("Open goal: expected In Progress badge, got %q %v", open.Badge, open.BadgeTone)
	}
}

func TestGoalDueTextIsVerbatim(t *testing.T) {
	tests := []struct {
		deadline string
		expected string
	}{
		{"2024-12-31", "Due: 2024-12-31"},
		{"31/12/2024", "Due: 31/12/2024"},
		{"", "Due: "},
		{"someday", "Due: someday"},
	}

	for _, tt := range tests {
		t.Run(tt.deadline, func(t *testing.T) {
			row := DeriveGoal(Goal{ID: 1, Title: "Goal", Deadline: tt.deadline})
			if row.DueText != tt.expected {
				t.Errorf("DueText = %q, want %q", row.DueText, tt.expected)
			}
		})
	}
}

func TestBuildSample(t *testing.T) {
	view := Build(Sample())

	if view.Title != "Monaco Dashboard" {
		t.Errorf("Expected title 'Monaco Dashboard', got %q", view.Title)
	}
	if view.Description != "Team Performance Dashboard" {
		t.Errorf("Expected description 'Team Performance Dashboard', got %q", view.Description)
	}

	wantTeams := []string{"Alpha Team", "Beta Team", "Gamma Team", "Delta Team"}
	if len(view.Rankings) != len(wantTeams) {
		t.Fatalf("Expected %d ranking rows, got %d", len(wantTeams), len(view.Rankings))
	}
	for i, team := range wantTeams {
		if view.Rankings[i].Team != team {
			t.Errorf("Ranking %d: expected %q, got %q", i, team, view.Rankings[i].Team)
		}
	}

	wantGoals := []int{1, 2, 3, 4}
	if len(view.Goals) != len(wantGoals) {
		t.Fatalf("Expected %d goal rows, got %d", len(wantGoals), len(view.Goals))
	}
	for i, id := range wantGoals {
		if view.Goals[i].ID != id {
			t.Errorf("Goal %d: expected id %d, got %d", i, id, view.Goals[i].ID)
		}
	}

	if view.Rankings[3].Glyph != GlyphNeutral {
		t.Errorf("Delta Team is stable, expected %q, got %q", GlyphNeutral, view.Rankings[3].Glyph)
	}
	if view.Goals[1].Badge != BadgeCompleted {
		t.Errorf("Goal 2 is completed, expected %q, got %q", BadgeCompleted, view.Goals[1].Badge)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	p := Sample()
	first := Build(p)
	second := Build(p)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical views from identical input")
	}
}

func TestStaticReturnsCopies(t *testing.T) {
	p := Sample()

	goals := p.Goals()
	goals[0].Title = "mutated"
	rankings := p.Rankings()
	rankings[0].Score = -1

	if p.Goals()[0].Title != "Increase Sales by 20%" {
		t.Error("Mutating returned goals changed the provider")
	}
	if p.Rankings()[0].Score != 95 {
		t.Error("Mutating returned rankings changed the provider")
	}
}

func TestNewStaticCopiesInput(t *testing.T) {
	goals := SampleGoals()
	p := NewStatic(goals, nil)
	goals[0].Completed = true

	if p.Goals()[0].Completed {
		t.Error("Mutating the input slice changed the provider")
	}
}

func TestEmptyProvider(t *testing.T) {
	view := Build(NewStatic(nil, nil))
	if len(view.Rankings) != 0 || len(view.Goals) != 0 {
		t.Errorf("Expected no rows, got %d rankings and %d goals", len(view.Rankings), len(view.Goals))
	}
}
