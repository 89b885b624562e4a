package commands

import "context"

// Quit asks the caller to end the process normally.
type Quit struct{}

func (Quit) Execute(context.Context, Data) (Result, error) {
	return Result{Message: "Goodbye!", Quit: true}, nil
}
