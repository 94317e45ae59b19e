package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/stackrm/internal/teardown"
)

var (
	_ teardown.Reporter      = (*Bridge)(nil)
	_ teardown.PhaseObserver = (*Bridge)(nil)
)

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards destroy progress into a running dashboard.
// It satisfies both teardown.Reporter and teardown.PhaseObserver.
type Bridge struct {
	p sender
}

// NewBridge creates a bridge sending to p.
func NewBridge(p sender) *Bridge {
	return &Bridge{p: p}
}

func (b *Bridge) Status(format string, args ...any) {
	b.p.Send(StatusMsg{Text: fmt.Sprintf(format, args...)})
}

func (b *Bridge) Warn(format string, args ...any) {
	b.p.Send(WarnMsg{Text: fmt.Sprintf(format, args...)})
}

// Done records the final success line; the dashboard closes once the run returns.
func (b *Bridge) Done(format string, args ...any) {
	b.p.Send(StatusMsg{Text: fmt.Sprintf(format, args...)})
}

func (b *Bridge) Error(format string, args ...any) {
	b.p.Send(WarnMsg{Text: fmt.Sprintf(format, args...)})
}

func (b *Bridge) PhaseStarted(name string) {
	b.p.Send(PhaseMsg{Phase: name})
}

func (b *Bridge) PhaseFinished(name string, err error) {
	b.p.Send(PhaseMsg{Phase: name, Done: err == nil, Err: err})
}
