// Package wizard collects a project description interactively.
package wizard

import "errors"

var (
	// ErrCancelled is returned when the user aborts the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNotInteractive is returned when stdin is not a terminal.
	ErrNotInteractive = errors.New("wizard needs an interactive terminal")
)

// Default answers.
const (
	DefaultProjectName = "my-project"
	DefaultFieldType   = "string"
)

// Prompter asks one question at a time.
type Prompter interface {
	// Input asks for a line of text. An empty answer yields placeholder.
	// validate may be nil.
	Input(title, placeholder string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)
}

// Notifier receives the acknowledgements printed between questions.
type Notifier interface {
	Section(title string)
	FieldAdded(name, declared string)
}

type nopNotifier struct{}

func (nopNotifier) Section(string)            {}
func (nopNotifier) FieldAdded(string, string) {}
