// Package ai provides text-completion clients for LLM providers.
// The rest of the application depends only on the Completer interface;
// provider selection happens at composition time.
package ai

import "context"

// Completer is an opaque text-completion service: a system instruction
// plus a prompt in, text out. Implementations must be safe for
// concurrent use.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Name identifies the provider and model for logging.
	Name() string
}

// Disabled is a Completer that always fails. It is wired in when no
// provider API key is configured so that only LLM-backed operations
// fail, not startup.
type Disabled struct{}

// Complete always returns ErrNotConfigured.
func (Disabled) Complete(ctx context.Context, system, prompt string) (string, error) {
	return "", ErrNotConfigured
}

// Name identifies the disabled client.
func (Disabled) Name() string { return "disabled" }
