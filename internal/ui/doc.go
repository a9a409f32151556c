// Package ui draws the dashboard for the terminal.
//
// Render takes RenderParams and returns the full screen as a string; it has
// no side effects and holds no state, so the interactive model and the
// static render command share it. Card composes the bordered panel, header
// and body regions used for both the rankings and the goals.
//
// RenderReport draws a GameRoom analytics report with the same cards.
package ui
