package ai

import "context"

// Completion — a remote text-completion model. Knows nothing about
// flashpoints or sessions; takes a prompt, returns generated text.
type Completion interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
