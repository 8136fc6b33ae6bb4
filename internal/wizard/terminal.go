package wizard

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Interactive reports whether stdin is a terminal.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Terminal is the Prompter backed by huh forms. Each question runs as its
// own form.
type Terminal struct {
	accessible bool
}

// NewTerminal returns a terminal prompter. Accessible mode replaces the
// full-screen widgets with plain line prompts.
func NewTerminal(accessible bool) *Terminal {
	return &Terminal{accessible: accessible}
}

// Input implements Prompter.
func (t *Terminal) Input(title, placeholder string, validate func(string) error) (string, error) {
	var value string
	in := huh.NewInput().Title(title).Value(&value)
	if placeholder != "" {
		in = in.Placeholder(placeholder)
	}
	if validate != nil {
		in = in.Validate(validate)
	}
	if err := t.run(in); err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return placeholder, nil
	}
	return value, nil
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(title string) (bool, error) {
	var value bool
	c := huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&value)
	if err := t.run(c); err != nil {
		return false, err
	}
	return value, nil
}

func (t *Terminal) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(t.accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
