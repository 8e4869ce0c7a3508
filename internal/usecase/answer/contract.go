package answer

import "context"

// Generator produces free text from a prompt. The response may embed JSON
// if the prompt asked for it, but nothing guarantees it does.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
