package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	xerrors "github.com/extstrap/cli/internal/errors"
)

// Asker presents a single question and suspends until the user answers or
// cancels. Cancellation surfaces as ErrCancelled.
type Asker interface {
	// Input asks for a free-form string answer.
	Input(title, description, initial string, validate func(string) error) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, initial bool) (bool, error)
}

// HuhAsker presents questions as huh forms, one per question so that
// initial values can depend on earlier answers.
type HuhAsker struct{}

// NewHuhAsker creates the interactive Asker.
func NewHuhAsker() *HuhAsker {
	return &HuhAsker{}
}

// Input implements Asker.
func (a *HuhAsker) Input(title, description, initial string, validate func(string) error) (string, error) {
	value := initial

	input := huh.NewInput().
		Title(title).
		Value(&value)
	if description != "" {
		input = input.Description(description)
	}
	if validate != nil {
		input = input.Validate(validate)
	}

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", mapAbort(err)
	}
	return value, nil
}

// Confirm implements Asker.
func (a *HuhAsker) Confirm(title string, initial bool) (bool, error) {
	value := initial

	confirm := huh.NewConfirm().
		Title(title).
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, mapAbort(err)
	}
	return value, nil
}

func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return xerrors.ErrCancelled
	}
	return err
}
