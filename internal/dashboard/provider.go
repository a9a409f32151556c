package dashboard

import "slices"

//go:generate mockgen -destination=../app/mock_provider_test.go -package=app github.com/henri123lemoine/monaco/internal/dashboard Provider

// Provider supplies the two collections. Implementations must return the
// same contents on every call.
type Provider interface {
	Goals() []Goal
	Rankings() []Ranking
}

// Static is a Provider over fixed collections. It copies on the way in and
// on the way out, so nothing outside can change what it serves.
type Static struct {
	goals    []Goal
	rankings []Ranking
}

var _ Provider = (*Static)(nil)

// NewStatic returns a Provider serving copies of goals and rankings.
func NewStatic(goals []Goal, rankings []Ranking) *Static {
	return &Static{
		goals:    slices.Clone(goals),
		rankings: slices.Clone(rankings),
	}
}

// Goals returns a copy of the goal collection.
func (s *Static) Goals() []Goal {
	return slices.Clone(s.goals)
}

// Rankings returns a copy of the ranking collection.
func (s *Static) Rankings() []Ranking {
	return slices.Clone(s.rankings)
}

// SampleGoals returns the built-in goal fixtures.
func SampleGoals() []Goal {
	return []Goal{
		{ID: 1, Title: "Increase Sales by 20%", Deadline: "2024-12-31", Completed: false},
		{ID: 2, Title: "Launch New Product Line", Deadline: "2024-06-30", Completed: true},
		{ID: 3, Title: "Reduce Customer Churn", Deadline: "2024-09-30", Completed: false},
		{ID: 4, Title: "Expand to New Market", Deadline: "2024-08-15", Completed: false},
	}
}

// SampleRankings returns the built-in ranking fixtures.
func SampleRankings() []Ranking {
	return []Ranking{
		{ID: 1, Team: "Alpha Team", Score: 95, Trend: "up"},
		{ID: 2, Team: "Beta Team", Score: 88, Trend: "down"},
		{ID: 3, Team: "Gamma Team", Score: 82, Trend: "up"},
		{ID: 4, Team: "Delta Team", Score: 78, Trend: "stable"},
	}
}

// Sample returns a Provider over the built-in fixtures.
func Sample() *Static {
	return NewStatic(SampleGoals(), SampleRankings())
}
