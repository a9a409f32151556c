// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/monaco/internal/dashboard"
	"github.com/henri123lemoine/monaco/internal/theme"
)

// Styles holds the lipgloss styles derived from a palette.
type Styles struct {
	Palette theme.Palette

	// Banner
	Logo    lipgloss.Style
	Heading lipgloss.Style

	// Card regions
	Panel  lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Icon   lipgloss.Style

	// Rows
	Ordinal  lipgloss.Style
	Text     lipgloss.Style
	Subtext  lipgloss.Style
	Score    lipgloss.Style
	Selected lipgloss.Style

	// Chrome
	Help    lipgloss.Style
	Divider lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Input   lipgloss.Style
}

// NewStyles builds the styles for palette p.
func NewStyles(p theme.Palette) Styles {
	brand := lipgloss.Color(p.Brand)
	muted := lipgloss.Color(p.Muted)

	return Styles{
		Palette: p,

		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.OnBrand)).
			Background(brand).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Heading)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(brand).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(brand).
			MarginBottom(1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(brand),
		Body: lipgloss.NewStyle(),
		Icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),

		Ordinal: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.RowOrdinal)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.RowText)),
		Subtext: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.RowSubtext)),
		Score: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Score)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Highlight)),

		Help: lipgloss.NewStyle().
			Foreground(muted),
		Divider: lipgloss.NewStyle().
			Foreground(muted),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(brand).
			Padding(0, 1),
	}
}

// Trend returns the style for a ranking trend glyph.
func (s Styles) Trend(t dashboard.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Palette.TrendColor(t)))
}

// GoalIcon returns the style for a goal completion icon.
func (s Styles) GoalIcon(t dashboard.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Palette.IconColor(t)))
}

// Badge returns the style for a goal status badge.
func (s Styles) Badge(t dashboard.Tone) lipgloss.Style {
	sw := s.Palette.Badge(t)
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(sw.Fg)).
		Padding(0, 1)
	if sw.Bg != "" {
		style = style.Background(lipgloss.Color(sw.Bg))
	}
	return style
}

// Symbols
const (
	SymbolCursor   = "›"
	SymbolLogo     = "▌∷"
	SymbolRankings = "★"
	SymbolGoals    = "◎"
	SymbolDivider  = "─"
)
