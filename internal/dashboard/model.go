package dashboard

// Page metadata exposed to hosting surfaces.
const (
	Title       = "Monaco Dashboard"
	Description = "Team Performance Dashboard"
	Brand       = "MONACO"
)

// Card titles.
const (
	RankingsTitle = "Team Rankings"
	GoalsTitle    = "Team Goals"
)

// Goal is a tracked objective.
type Goal struct {
	ID    int    `toml:"id" yaml:"id" json:"id"`
	Title string `toml:"title" yaml:"title" json:"title"`
	// Deadline is an ISO-8601 date. It is displayed verbatim and never parsed.
	Deadline  string `toml:"deadline" yaml:"deadline" json:"deadline"`
	Completed bool   `toml:"completed" yaml:"completed" json:"completed"`
}

// Ranking is a scored entry for a team. Trend holds the text exactly as the
// data gave it; TrendKind classifies it.
type Ranking struct {
	ID    int    `toml:"id" yaml:"id" json:"id"`
	Team  string `toml:"team" yaml:"team" json:"team"`
	Score int    `toml:"score" yaml:"score" json:"score"`
	Trend string `toml:"trend" yaml:"trend" json:"trend"`
}

// TrendKind returns the Trend for r's trend text.
func (r Ranking) TrendKind() Trend {
	return ParseTrend(r.Trend)
}

// Trend is the direction a team's score is moving.
type Trend int

const (
	TrendUnknown Trend = iota
	TrendUp
	TrendDown
	TrendStable
)

// ParseTrend maps text to a Trend. Matching is exact, so "UP" or " up " are
// not TrendUp. It never fails: anything that is not "up", "down" or "stable"
// becomes TrendUnknown.
func ParseTrend(s string) Trend {
	switch s {
	case "up":
		return TrendUp
	case "down":
		return TrendDown
	case "stable":
		return TrendStable
	default:
		return TrendUnknown
	}
}

// String returns the canonical text for t.
func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendStable:
		return "stable"
	default:
		return "unknown"
	}
}

// Tone is the semantic color role of a derived element. Surfaces map tones
// to concrete colors through a theme.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
	ToneAlert
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	case ToneAlert:
		return "alert"
	default:
		return "neutral"
	}
}
