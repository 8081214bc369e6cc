package bot

import "context"

// TextGenerator is the capability the responder uses to produce a live reply.
// Generate steers the model with the intent's directive and sends the user
// message as the user turn. Implementations must bound the call with a
// timeout; any failure is reported through the error, never panicked.
type TextGenerator interface {
	Generate(ctx context.Context, directive, message string) (string, error)
}
