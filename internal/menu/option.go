// Package menu binds shortcuts to commands. An Option optionally carries a
// Form, the preparation step that turns answers gathered by the caller into
// the command's input.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/bark/internal/commands"
)

// Field is one question the caller asks before running an Option.
type Field struct {
	Key      string
	Label    string
	Required bool
}

// Form describes the input an Option needs and how to build it.
type Form struct {
	Fields []Field
	Build  func(answers map[string]string) (commands.Data, error)
}

// Option binds a display name to a command and its optional Form.
type Option struct {
	Name    string
	Command commands.Command
	Form    *Form
}

func (o Option) String() string {
	return o.Name
}

// Prepare runs the Form's build step. Options without a Form yield nil data.
func (o Option) Prepare(answers map[string]string) (commands.Data, error) {
	if o.Form == nil {
		return nil, nil
	}
	for _, f := range o.Form.Fields {
		if f.Required && strings.TrimSpace(answers[f.Key]) == "" {
			return nil, fmt.Errorf("%w: %s is required", commands.ErrInvalidInput, f.Label)
		}
	}
	return o.Form.Build(answers)
}

// Choose prepares the input from answers and executes the command.
func (o Option) Choose(ctx context.Context, answers map[string]string) (commands.Result, error) {
	data, err := o.Prepare(answers)
	if err != nil {
		return commands.Result{}, err
	}
	return o.Command.Execute(ctx, data)
}

// Entry pairs a shortcut with its Option.
type Entry struct {
	Shortcut string
	Option   Option
}

// Options is an ordered set of menu entries.
type Options []Entry

// Lookup resolves a shortcut, ignoring case.
func (opts Options) Lookup(choice string) (Option, bool) {
	choice = strings.TrimSpace(choice)
	for _, e := range opts {
		if strings.EqualFold(e.Shortcut, choice) {
			return e.Option, true
		}
	}
	return Option{}, false
}
