// Package app provides the Bubble Tea model for the interactive dashboard.
//
// The Model derives the dashboard view from its Provider once, then keeps
// only presentation state: which card has focus, the cursor, the fuzzy
// filter, the detail toggle and the help screen. Filtering selects rows by
// index, so every visible ranking keeps the ordinal it was derived with.
package app
