package ai_fx

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ankala/internal/ai"
	"ankala/internal/services"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideDebouncer)

// ProvideCompletionClient builds the backend chain from the environment:
// a cheap/fast OpenAI-compatible model first, a stronger fallback second, and
// optionally Gemini as the last resort when GEMINI_API_KEY is set.
func ProvideCompletionClient(logger *zap.Logger) (services.CompletionClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	baseURL := os.Getenv("OPENAI_BASE_URL")
	maxAttempts := getEnvInt("AI_MAX_ATTEMPTS", 4)

	backends := []ai.BackendConfig{
		{
			Backend:     ai.NewOpenAIBackend(apiKey, getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"), baseURL),
			MaxAttempts: maxAttempts,
		},
		{
			Backend:     ai.NewOpenAIBackend(apiKey, getEnvWithDefault("OPENAI_FALLBACK_MODEL", "o4-mini"), baseURL),
			MaxAttempts: maxAttempts,
		},
	}

	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		gemini, err := ai.NewGeminiBackend(context.Background(), geminiKey, getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini backend: %w", err)
		}
		backends = append(backends, ai.BackendConfig{Backend: gemini, MaxAttempts: maxAttempts})
	}

	opts := ai.Options{
		Temperature: 0.9,
		MaxTokens:   6144,
	}

	logger.Info("completion client initialized",
		zap.Int("backends", len(backends)),
		zap.Int("max_attempts", maxAttempts))

	return ai.NewClient(backends, opts, logger), nil
}

func ProvideDebouncer() *ai.Debouncer {
	return ai.NewDebouncer()
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
