package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var (
	isInteractive = func() bool {
		return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
	}
	promptAppName = runAppNamePrompt
)

// confirmAppName checks that the operator named the app they mean to
// destroy. Without --app on a terminal, the operator is asked to type it.
func confirmAppName(ctx context.Context, given, want string) (string, error) {
	if given == "" && isInteractive() {
		typed, err := promptAppName(ctx, want)
		if err != nil {
			return "", err
		}
		given = typed
	}
	if given != want {
		return "", ErrNoAppName
	}
	return given, nil
}

func runAppNamePrompt(ctx context.Context, want string) (string, error) {
	var typed string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("App Name").
				Description(fmt.Sprintf("Type %q to confirm you want to destroy it", want)).
				Placeholder(want).
				Value(&typed).
				Validate(func(s string) error {
					if s != want {
						return fmt.Errorf("does not match %q", want)
					}
					return nil
				}),
		).Title("Confirm Destroy"),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}
	return typed, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
