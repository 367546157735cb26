package chat

import "context"

// Completer turns one user turn into assistant reply text. The only
// implementation in production is the Anthropic client; tests stub it.
type Completer interface {
	Complete(ctx context.Context, content string) (string, error)
}
