package ai

import (
	"context"

	"leadpilot_backend/platform/ai/gemini"
	"leadpilot_backend/platform/ai/xai"
	"leadpilot_backend/platform/config"
)

// NewCompleter builds the Completer for the configured provider.
// When the provider's API key is missing it returns the Disabled
// client rather than an error.
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	if cfg.AIAPIKey() == "" {
		return Disabled{}, nil
	}

	switch cfg.AIProvider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, gemini.Config{
			APIKey:         cfg.GeminiAPIKey,
			Model:          cfg.GeminiModel,
			Temperature:    cfg.AITemperature,
			RequestsPerMin: cfg.AIRequestsPerMin,
		})
	default:
		return xai.NewClient(xai.Config{
			APIKey:         cfg.XAIAPIKey,
			BaseURL:        cfg.XAIBaseURL,
			Model:          cfg.XAIModel,
			Temperature:    cfg.AITemperature,
			Timeout:        cfg.AITimeout,
			RequestsPerMin: cfg.AIRequestsPerMin,
		}), nil
	}
}
