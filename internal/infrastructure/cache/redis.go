package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/start94/-Code-of-Babel/internal/domain/service"
	"github.com/start94/-Code-of-Babel/internal/infrastructure/config"
)

// NewRedisClient creates a new Redis client and verifies the connection
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// PredictionCache stores predictions keyed by a digest of the trimmed
// input text. Misses and redis errors are indistinguishable on purpose:
// the cache is best-effort.
type PredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPredictionCache creates a prediction cache backed by client.
func NewPredictionCache(client *redis.Client, ttl time.Duration) *PredictionCache {
	return &PredictionCache{client: client, ttl: ttl}
}

// Get returns the cached prediction for text, if any.
func (c *PredictionCache) Get(ctx context.Context, text string) (*service.Prediction, bool) {
	data, err := c.client.Get(ctx, cacheKey(text)).Bytes()
	if err != nil {
		return nil, false
	}

	var pred service.Prediction
	if err := json.Unmarshal(data, &pred); err != nil {
		return nil, false
	}
	return &pred, true
}

// Set stores a prediction for text with the configured TTL.
func (c *PredictionCache) Set(ctx context.Context, text string, pred *service.Prediction) {
	data, err := json.Marshal(pred)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(text), data, c.ttl)
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "babel:pred:" + hex.EncodeToString(sum[:])
}
