// Package theme maps the dashboard's semantic tones to concrete colors.
package theme

import (
	"sort"

	"github.com/henri123lemoine/monaco/internal/dashboard"
)

// Swatch is a foreground/background pair. Background may be empty.
type Swatch struct {
	Fg string
	Bg string
}

// Palette holds every color the dashboard uses. Values are hex strings
// ("#560FE4") for the monaco theme and ANSI indexes ("4") for the
// terminal theme; HTML and PDF output always use the monaco palette.
type Palette struct {
	Name string

	Page       string // page background
	Brand      string // logo block and card borders
	Heading    string // banner heading
	Accent     string // card title icons
	CardHeader string // card header background
	Row        string // row background
	RowOrdinal string // "#1"
	RowText    string // team name, goal title
	RowSubtext string // due date
	Score      string
	OnBrand    string // text drawn on the brand color
	Highlight  string // selected row in the terminal UI
	Muted      string
	Error      string

	TrendUp      string
	TrendDown    string
	TrendNeutral string

	IconSuccess string
	IconFailure string

	BadgePositive Swatch
	BadgeNeutral  Swatch
}

var palettes = map[string]Palette{
	"monaco": {
		Name:          "monaco",
		Page:          "#E4CEFD",
		Brand:         "#560FE4",
		Heading:       "#220484",
		Accent:        "#A46CF6",
		CardHeader:    "#FFFFFF",
		Row:           "#F8F5FF",
		RowOrdinal:    "#420AC4",
		RowText:       "#3107A4",
		RowSubtext:    "#420AC4",
		Score:         "#560FE4",
		OnBrand:       "#FFFFFF",
		Highlight:     "#A46CF6",
		Muted:         "#6B7280",
		Error:         "#F23535",
		TrendUp:       "#22C55E",
		TrendDown:     "#EF4444",
		TrendNeutral:  "#6B7280",
		IconSuccess:   "#A5E004",
		IconFailure:   "#F23535",
		BadgePositive: Swatch{Fg: "#436B00", Bg: "#F5FDCB"},
		BadgeNeutral:  Swatch{Fg: "#220484", Bg: "#E4CEFD"},
	},
	"terminal": {
		Name:          "terminal",
		Brand:         "4",
		Heading:       "4",
		Accent:        "5",
		RowOrdinal:    "6",
		RowText:       "252",
		RowSubtext:    "245",
		Score:         "4",
		OnBrand:       "15",
		Highlight:     "6",
		Muted:         "245",
		Error:         "1",
		TrendUp:       "2",
		TrendDown:     "1",
		TrendNeutral:  "8",
		IconSuccess:   "2",
		IconFailure:   "1",
		BadgePositive: Swatch{Fg: "2"},
		BadgeNeutral:  Swatch{Fg: "5"},
	},
}

// Default is the palette used when no theme is configured.
const Default = "monaco"

// Get returns the named palette and whether it exists. Unknown names
// return the default palette.
func Get(name string) (Palette, bool) {
	if p, ok := palettes[name]; ok {
		return p, true
	}
	return palettes[Default], false
}

// Names returns the available palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TrendColor returns the color for a ranking trend tone.
func (p Palette) TrendColor(t dashboard.Tone) string {
	switch t {
	case dashboard.TonePositive:
		return p.TrendUp
	case dashboard.ToneNegative:
		return p.TrendDown
	default:
		return p.TrendNeutral
	}
}

// IconColor returns the color for a goal completion icon tone.
func (p Palette) IconColor(t dashboard.Tone) string {
	if t == dashboard.TonePositive {
		return p.IconSuccess
	}
	return p.IconFailure
}

// Badge returns the swatch for a goal status badge tone.
func (p Palette) Badge(t dashboard.Tone) Swatch {
	if t == dashboard.TonePositive {
		return p.BadgePositive
	}
	return p.BadgeNeutral
}
