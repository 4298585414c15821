package chat

import "context"

// Completer turns a message into raw model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
