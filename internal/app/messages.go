package app

// Message types for the bubbletea app.

// ExportedMsg is sent when a PDF export finishes.
type ExportedMsg struct {
	Path string
	Err  error
}
