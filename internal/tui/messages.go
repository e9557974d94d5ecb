package tui

// Message types for Bubble Tea update loop.

// clearStatusMsg expires a status line. Seq guards against clearing a newer status.
type clearStatusMsg struct{ Seq int }
