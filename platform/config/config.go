// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AI provider identifiers.
const (
	ProviderXAI    = "xai"
	ProviderGemini = "gemini"
)

// Config holds all application settings loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	// Per-IP request rate limiting for the API surface.
	RateLimitRPS   float64
	RateLimitBurst int

	// LLM provider selection and credentials.
	AIProvider    string
	XAIAPIKey     string
	XAIBaseURL    string
	XAIModel      string
	GeminiAPIKey  string
	GeminiModel   string
	AITemperature float64
	AITimeout     time.Duration
	// Completion requests per minute against the provider.
	AIRequestsPerMin int

	// Path of the JSON file synthetic leads are persisted to.
	LeadsFile string
	// Default batch size for synthetic lead generation.
	GenerateCount int
}

// Load reads configuration from the environment, applying defaults.
// A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitRPS:     mustFloat(getEnv("RATE_LIMIT_RPS", "10")),
		RateLimitBurst:   mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		AIProvider:       strings.ToLower(getEnv("AI_PROVIDER", ProviderXAI)),
		XAIAPIKey:        getEnv("XAI_API_KEY", ""),
		XAIBaseURL:       getEnv("XAI_BASE_URL", "https://api.x.ai/v1"),
		XAIModel:         getEnv("XAI_MODEL", "grok-4"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AITemperature:    mustFloat(getEnv("AI_TEMPERATURE", "0.7")),
		AITimeout:        mustDuration(getEnv("AI_TIMEOUT", "120s")),
		AIRequestsPerMin: mustInt(getEnv("AI_REQUESTS_PER_MIN", "20")),
		LeadsFile:        getEnv("LEADS_FILE", "leads.json"),
		GenerateCount:    mustInt(getEnv("GENERATE_COUNT", "10")),
	}

	if cfg.AIProvider != ProviderXAI && cfg.AIProvider != ProviderGemini {
		return nil, fmt.Errorf("AI_PROVIDER must be %q or %q, got %q", ProviderXAI, ProviderGemini, cfg.AIProvider)
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if cfg.GenerateCount <= 0 {
		return nil, fmt.Errorf("GENERATE_COUNT must be positive")
	}

	return cfg, nil
}

// AIAPIKey returns the API key for the selected provider.
func (c *Config) AIAPIKey() string {
	if c.AIProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.XAIAPIKey
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
