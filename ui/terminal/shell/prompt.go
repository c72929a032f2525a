package shell

import (
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

// Asker is what the shell needs from a terminal.
type Asker interface {
	Choose(label string, items []string) (int, error)
	Ask(label, def string, validate func(string) error) (string, error)
	Confirm(label string) (bool, error)
}

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} ",
	Valid:   "{{ . | green }} ",
	Invalid: "{{ . | red }} ",
	Success: "{{ . | bold }} ",
}

// Prompter asks through promptui.
type Prompter struct{}

func (Prompter) Choose(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}

	i, _, err := sel.Run()
	return i, err
}

func (Prompter) Ask(label, def string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: def != "",
		Validate:  validate,
		Templates: templates,
	}

	return p.Run()
}

func (Prompter) Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   "n",
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
