// Package export writes the dashboard as a PDF document.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/henri123lemoine/monaco/internal/dashboard"
	"github.com/henri123lemoine/monaco/internal/debug"
	"github.com/henri123lemoine/monaco/internal/theme"
)

const (
	font       = "Helvetica"
	pageMargin = 15.0
	rowHeight  = 8.0
)

// Core fonts are cp1252, so the arrows and check marks used on screen are
// replaced with plain text.
func trendText(t dashboard.Tone) string {
	switch t {
	case dashboard.TonePositive:
		return "up"
	case dashboard.ToneNegative:
		return "down"
	default:
		return "steady"
	}
}

func iconText(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// Write renders view as a single-page A4 PDF to w.
func Write(w io.Writer, view dashboard.View) error {
	defer debug.Timed("export pdf")()

	p, _ := theme.Get(theme.Default)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle(view.Title, true)
	pdf.SetSubject(view.Description, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	width := pageWidth - 2*pageMargin

	// Banner
	setFill(pdf, p.Brand)
	setText(pdf, p.OnBrand)
	pdf.SetFont(font, "B", 14)
	pdf.CellFormat(32, 12, dashboard.Brand, "", 0, "C", true, 0, "")
	setText(pdf, p.Heading)
	pdf.SetFont(font, "B", 18)
	pdf.CellFormat(width-32, 12, "  "+tr(view.Description), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Rankings card
	cardHeader(pdf, p, width, dashboard.RankingsTitle)
	if len(view.Rankings) == 0 {
		emptyRow(pdf, p, width, "No rankings.")
	}
	for _, row := range view.Rankings {
		setFill(pdf, p.Row)
		pdf.SetFont(font, "B", 11)
		setText(pdf, p.RowOrdinal)
		pdf.CellFormat(16, rowHeight, row.Label, "L", 0, "L", true, 0, "")
		pdf.SetFont(font, "", 11)
		setText(pdf, p.RowText)
		pdf.CellFormat(width-16-24-24, rowHeight, tr(row.Team), "", 0, "L", true, 0, "")
		pdf.SetFont(font, "B", 11)
		setText(pdf, p.Score)
		pdf.CellFormat(24, rowHeight, strconv.Itoa(row.Score), "", 0, "R", true, 0, "")
		pdf.SetFont(font, "", 10)
		setText(pdf, p.TrendColor(row.Tone))
		pdf.CellFormat(24, rowHeight, trendText(row.Tone), "R", 1, "R", true, 0, "")
	}
	cardFooter(pdf, p, width)
	pdf.Ln(6)

	// Goals card
	cardHeader(pdf, p, width, dashboard.GoalsTitle)
	if len(view.Goals) == 0 {
		emptyRow(pdf, p, width, "No goals.")
	}
	for _, row := range view.Goals {
		badge := p.Badge(row.BadgeTone)

		setFill(pdf, p.Row)
		pdf.SetFont(font, "B", 11)
		setText(pdf, p.IconColor(row.IconTone))
		pdf.CellFormat(12, rowHeight, iconText(row.Completed), "L", 0, "L", true, 0, "")
		pdf.SetFont(font, "", 11)
		setText(pdf, p.RowText)
		pdf.CellFormat(width-12-32, rowHeight, tr(row.Title), "", 0, "L", true, 0, "")
		if badge.Bg != "" {
			setFill(pdf, badge.Bg)
		}
		pdf.SetFont(font, "", 9)
		setText(pdf, badge.Fg)
		pdf.CellFormat(32, rowHeight, row.Badge, "R", 1, "C", true, 0, "")

		setFill(pdf, p.Row)
		setText(pdf, p.RowSubtext)
		pdf.CellFormat(12, rowHeight-2, "", "L", 0, "L", true, 0, "")
		pdf.CellFormat(width-12, rowHeight-2, tr(row.DueText), "R", 1, "L", true, 0, "")
	}
	cardFooter(pdf, p, width)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile writes the PDF to path, creating parent directories.
func WriteFile(path string, view dashboard.View) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Write(f, view); err != nil {
		return err
	}
	debug.Log("pdf exported", "path", path)
	return nil
}

func cardHeader(pdf *fpdf.Fpdf, p theme.Palette, width float64, title string) {
	setFill(pdf, p.CardHeader)
	setDraw(pdf, p.Brand)
	setText(pdf, p.Brand)
	pdf.SetFont(font, "B", 13)
	pdf.CellFormat(width, 10, title, "LTRB", 1, "L", true, 0, "")
}

func cardFooter(pdf *fpdf.Fpdf, p theme.Palette, width float64) {
	setFill(pdf, p.Row)
	setDraw(pdf, p.Brand)
	pdf.CellFormat(width, 2, "", "LRB", 1, "L", true, 0, "")
}

func emptyRow(pdf *fpdf.Fpdf, p theme.Palette, width float64, text string) {
	setFill(pdf, p.Row)
	setText(pdf, p.Muted)
	pdf.SetFont(font, "I", 11)
	pdf.CellFormat(width, rowHeight, text, "LR", 1, "L", true, 0, "")
}

func setFill(pdf *fpdf.Fpdf, hex string) {
	r, g, b := rgb(hex)
	pdf.SetFillColor(r, g, b)
}

func setText(pdf *fpdf.Fpdf, hex string) {
	r, g, b := rgb(hex)
	pdf.SetTextColor(r, g, b)
}

func setDraw(pdf *fpdf.Fpdf, hex string) {
	r, g, b := rgb(hex)
	pdf.SetDrawColor(r, g, b)
}

// rgb parses "#RRGGBB". Anything else is black.
func rgb(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
