package llm

import (
	"context"
	"fmt"
	"strings"

	"intervia-backend/internal/config"
)

// Client is the interface to the completion service. Implementations make
// exactly one call per Complete invocation; retries and repair are the
// caller's problem (and by design nobody's).
type Client interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// NewClientFromConfig picks the provider named in the configuration.
func NewClientFromConfig(ctx context.Context, cfg *config.APIConfig) (Client, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
	case "ollama":
		return NewOllamaClient(cfg.LLM.OllamaURL, cfg.LLM.Model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

// CleanJSON strips the markdown code fences models wrap JSON in despite
// being told not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
