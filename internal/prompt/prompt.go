package prompt

import (
	"context"
	"errors"
)

// ErrCancelled is returned when the user backs out of a prompt. It
// propagates to a clean cancellation exit, never to a crash.
var ErrCancelled = errors.New("prompt: cancelled by user")

// Candidate is one selectable project entry. Path is display metadata
// only; resolution happens in the selector.
type Candidate struct {
	Name string
	Path string
}

// Prompter is the interactive collaborator consumed by the selector.
// Implementations block until the user answers or cancels.
type Prompter interface {
	PickProject(ctx context.Context, title string, candidates []Candidate) (Candidate, error)
	Confirm(ctx context.Context, question string) (bool, error)
}
