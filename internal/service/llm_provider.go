package service

import (
	"context"
	"fmt"
	"io"

	"github.com/lshigami/SkillCheck/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LLMProvider sends a fully rendered prompt to a hosted model and returns its raw
// text output, which is expected to be a JSON document.
type LLMProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewLLMProvider picks the provider named by LLM_PROVIDER and wraps it with the
// Redis response cache when a Redis client is available.
func NewLLMProvider(cfg *config.Config, rdb *redis.Client) (LLMProvider, error) {
	var (
		provider LLMProvider
		err      error
	)
	switch cfg.LLM.Provider {
	case "", "gemini":
		provider, err = NewGeminiLLMService(cfg)
	case "groq":
		provider = NewGroqLLMService(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		provider = NewCachedLLMService(provider, rdb, cfg.LLM.CacheTTL)
	}
	log.Info().Str("provider", provider.Name()).Bool("cached", rdb != nil).Msg("LLM provider ready")
	return provider, nil
}

// CloseProvider releases the provider's client if it holds one.
func CloseProvider(p LLMProvider) error {
	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
