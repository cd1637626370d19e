package ai

import "errors"

// ErrNotConfigured is returned when no LLM provider API key is set.
var ErrNotConfigured = errors.New("llm provider is not configured")
