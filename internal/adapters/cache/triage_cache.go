package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/opcare/report-triage-service/internal/config"
	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// triageTTL bounds staleness between a write and the next invalidation.
const triageTTL = 60 * time.Second

// RedisTriageCache caches serialized triage views per subject. All operations
// are best-effort: failures are logged and reads fall through to the store.
// The circuit breaker keeps a dead redis from slowing every triage request.
type RedisTriageCache struct {
	client *redis.Client
	cb     *gobreaker.CircuitBreaker
}

var _ ports.TriageCache = (*RedisTriageCache)(nil)

func NewRedisTriageCache(client *redis.Client) *RedisTriageCache {
	return &RedisTriageCache{
		client: client,
		cb:     config.NewCircuitBreaker("Redis-Cache"),
	}
}

func (c *RedisTriageCache) Get(ctx context.Context, key string) (*domain.TriageView, bool) {
	raw, err := c.cb.Execute(func() (interface{}, error) {
		return missAsSuccess(c.client.Get(ctx, key).Bytes())
	})
	if err != nil {
		log.Printf("triage cache: get %s: %v", key, err)
		return nil, false
	}

	body, _ := raw.([]byte)
	if len(body) == 0 {
		return nil, false
	}

	var view domain.TriageView
	if err := json.Unmarshal(body, &view); err != nil {
		log.Printf("triage cache: corrupt entry %s: %v", key, err)
		c.Invalidate(ctx, key)
		return nil, false
	}
	return &view, true
}

// missAsSuccess keeps ordinary cache misses out of the circuit breaker's
// failure counts; only real redis errors may trip it. A miss comes back as an
// empty body with a nil error.
func missAsSuccess(body []byte, err error) ([]byte, error) {
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return body, err
}

func (c *RedisTriageCache) Set(ctx context.Context, key string, view *domain.TriageView) {
	body, err := json.Marshal(view)
	if err != nil {
		log.Printf("triage cache: marshal %s: %v", key, err)
		return
	}
	if _, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, key, body, triageTTL).Err()
	}); err != nil {
		log.Printf("triage cache: set %s: %v", key, err)
	}
}

func (c *RedisTriageCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if _, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.client.Del(ctx, keys...).Err()
	}); err != nil {
		log.Printf("triage cache: invalidate %v: %v", keys, err)
	}
}
