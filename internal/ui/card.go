package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered panel with a header region holding a title and a body
// region. Each region's style is applied to its element as given; use Layer
// to put caller styles on top of the defaults instead.
type Card struct {
	Panel  lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style

	// Width is the outer width including borders. Zero lets content decide.
	Width int
}

// NewCard returns a card using the region styles from s.
func NewCard(s Styles, width int) Card {
	return Card{
		Panel:  s.Panel,
		Header: s.Header,
		Title:  s.Title,
		Body:   s.Body,
		Width:  width,
	}
}

// Layer returns a copy of c with each caller style laid over the matching
// region. Attributes the caller sets win and unset ones fall back to the
// card's own. Inherit does not carry margins or padding, so those come
// from the caller style only.
func (c Card) Layer(panel, header, title, body lipgloss.Style) Card {
	c.Panel = panel.Inherit(c.Panel)
	c.Header = header.Inherit(c.Header)
	c.Title = title.Inherit(c.Title)
	c.Body = body.Inherit(c.Body)
	return c
}

// InnerWidth returns the width available to header and body content.
func (c Card) InnerWidth() int {
	if c.Width <= 0 {
		return 0
	}
	w := c.Width - c.Panel.GetHorizontalFrameSize()
	if w < 1 {
		w = 1
	}
	return w
}

// Render composes panel ⊃ header ⊃ title and panel ⊃ body.
func (c Card) Render(title, body string) string {
	header := c.Header
	bodyStyle := c.Body
	panel := c.Panel
	if inner := c.InnerWidth(); inner > 0 {
		header = header.Width(inner - header.GetHorizontalMargins())
		bodyStyle = bodyStyle.Width(inner - bodyStyle.GetHorizontalMargins())
		panel = panel.Width(c.Width - panel.GetHorizontalBorderSize() - panel.GetHorizontalMargins())
	}

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		header.Render(c.Title.Render(title)),
		bodyStyle.Render(body),
	))
}
