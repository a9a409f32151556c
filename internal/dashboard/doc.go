// Package dashboard holds the team performance data model and the pure
// functions that turn it into display rows.
//
// Goals and rankings reach the rest of the program through a read-only
// Provider. Build maps both collections into a View; every surface (the
// terminal UI, the static render, the HTML page and the PDF export) draws
// from the same View, so the derivation rules live in exactly one place.
//
// Rows are never sorted. A ranking's ordinal is its position in the
// collection, not its score.
package dashboard
