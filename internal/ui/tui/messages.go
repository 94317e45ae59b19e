// Package tui provides a Bubble Tea-based terminal UI for destroy runs.
package tui

// PhaseMsg reports progress of a destroy phase.
type PhaseMsg struct {
	Phase string
	Done  bool
	Err   error
}

// StatusMsg carries the latest progress line.
type StatusMsg struct{ Text string }

// WarnMsg carries a non-fatal problem worth keeping on screen.
type WarnMsg struct{ Text string }

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the operation is complete.
type DoneMsg struct{ Summary string }
