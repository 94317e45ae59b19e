package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunDestroyTUI wraps a destroy run with a Bubble Tea dashboard.
// destroyFn receives a bridge to use as reporter and phase observer. When the
// operator quits early, destroyFn's context is cancelled and its return awaited.
func RunDestroyTUI(
	ctx context.Context,
	destroyFn func(ctx context.Context, b *Bridge) error,
	stackName, environment string,
	phases []string,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewDestroyModel(stackName, environment, phases)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	result := make(chan error, 1)
	go func() {
		err := destroyFn(ctx, NewBridge(p))
		result <- err
		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{Summary: fmt.Sprintf("Successfully destroyed %s", stackName)})
	}()

	finalModel, tuiErr := p.Run()
	cancel()
	runErr := <-result

	if runErr != nil {
		return runErr
	}
	if tuiErr != nil && !errors.Is(tuiErr, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", tuiErr)
	}
	if fm, ok := finalModel.(Model); ok && fm.Aborted {
		return ErrAborted
	}
	return nil
}
