package llm

import "context"

// Invoker is the single capability the enhancement stage depends on: prompt
// in, model text out. Concrete providers live in the openai and anthropic
// subpackages; the merge logic never sees anything provider-specific.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}
