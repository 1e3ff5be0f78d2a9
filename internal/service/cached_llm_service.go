package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/lshigami/SkillCheck/internal/monitoring"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const llmCachePrefix = "skillcheck:llm:"

// cachedLLMService is a read-through cache in front of another provider. Redis
// failures are logged and the call falls through to the wrapped provider.
type cachedLLMService struct {
	next LLMProvider
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedLLMService(next LLMProvider, rdb *redis.Client, ttl time.Duration) LLMProvider {
	return &cachedLLMService{next: next, rdb: rdb, ttl: ttl}
}

func (s *cachedLLMService) Name() string { return s.next.Name() }

func (s *cachedLLMService) Generate(ctx context.Context, prompt string) (string, error) {
	key := llmCacheKey(s.next.Name(), prompt)

	cached, err := s.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		monitoring.LLMRequests.WithLabelValues("cache", s.next.Name(), "cache_hit").Inc()
		return cached, nil
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Msg("LLM cache read failed, calling provider directly")
	}

	out, err := s.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	// Only well formed JSON is cached so a bad answer is not replayed for the whole TTL.
	if !json.Valid([]byte(stripCodeFence(out))) {
		return out, nil
	}
	if err := s.rdb.Set(ctx, key, out, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("LLM cache write failed")
	}
	return out, nil
}

func (s *cachedLLMService) Close() error {
	return CloseProvider(s.next)
}

func llmCacheKey(provider, prompt string) string {
	sum := sha256.Sum256([]byte(provider + "\x00" + prompt))
	return llmCachePrefix + hex.EncodeToString(sum[:])
}
