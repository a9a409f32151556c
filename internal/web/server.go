// Package web serves the dashboard as a single HTML page.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/henri123lemoine/monaco/internal/dashboard"
	"github.com/henri123lemoine/monaco/internal/debug"
	"github.com/henri123lemoine/monaco/internal/theme"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type rankingItem struct {
	Label string
	Team  string
	Score int
	Glyph string
	Color string
}

type goalItem struct {
	Title     string
	DueText   string
	Icon      string
	IconColor string
	Badge     string
	BadgeFg   string
	BadgeBg   string
}

// Region holds the extra class tokens and inline style for one card
// element. Both are written to the page unchanged.
type Region struct {
	Class string
	Style template.CSS
}

// CardRegions are the per-element attributes shared by both cards.
type CardRegions struct {
	Panel  Region
	Header Region
	Title  Region
	Body   Region
}

// Option configures a Handler.
type Option func(*Handler)

// WithCardRegions adds caller classes and styles to the card elements.
func WithCardRegions(r CardRegions) Option {
	return func(h *Handler) {
		h.data.Regions = r
	}
}

type pageData struct {
	Title         string
	Description   string
	Brand         string
	RankingsTitle string
	GoalsTitle    string
	Palette       theme.Palette
	Regions       CardRegions
	Rankings      []rankingItem
	Goals         []goalItem
}

// Handler serves the dashboard page for a fixed view.
type Handler struct {
	tmpl *template.Template
	data pageData
}

// NewHandler returns a Handler for view, colored with the monaco palette.
func NewHandler(view dashboard.View, opts ...Option) *Handler {
	p, _ := theme.Get(theme.Default)

	data := pageData{
		Title:         view.Title,
		Description:   view.Description,
		Brand:         dashboard.Brand,
		RankingsTitle: dashboard.RankingsTitle,
		GoalsTitle:    dashboard.GoalsTitle,
		Palette:       p,
	}
	for _, r := range view.Rankings {
		data.Rankings = append(data.Rankings, rankingItem{
			Label: r.Label,
			Team:  r.Team,
			Score: r.Score,
			Glyph: r.Glyph,
			Color: p.TrendColor(r.Tone),
		})
	}
	for _, g := range view.Goals {
		badge := p.Badge(g.BadgeTone)
		data.Goals = append(data.Goals, goalItem{
			Title:     g.Title,
			DueText:   g.DueText,
			Icon:      g.Icon,
			IconColor: p.IconColor(g.IconTone),
			Badge:     g.Badge,
			BadgeFg:   badge.Fg,
			BadgeBg:   badge.Bg,
		})
	}

	h := &Handler{tmpl: pageTemplate, data: data}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Dashboard renders the page. The body is only written once the template
// has executed cleanly.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, h.data); err != nil {
		debug.Logger().Error("render page", "error", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// NewRouter creates a router serving the dashboard at "/". Other paths
// get 404 and other methods on "/" get 405.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/", h.Dashboard)

	return r
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		debug.Logger().Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"request_id", middleware.GetReqID(r.Context()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
