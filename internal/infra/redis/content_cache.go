package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"cybershield-academy/internal/domain"
)

// ModuleLoader fetches module content from a backing store.
type ModuleLoader interface {
	LoadModule(ctx context.Context, moduleID string) (domain.Module, error)
}

// ContentCache caches module content in Redis as a JSON blob per module and
// falls back to a loader on cache miss. Unlike a bare answer-key cache, the
// full structure is kept: prompts and options must survive the cache because
// sessions render them.
type ContentCache struct {
	client *redis.Client
	loader ModuleLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewContentCache(client *redis.Client, loader ModuleLoader, ttl time.Duration) *ContentCache {
	return &ContentCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *ContentCache) GetModule(ctx context.Context, moduleID string) (domain.Module, error) {
	key := c.key(moduleID)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var module domain.Module
		if err := json.Unmarshal(raw, &module); err == nil {
			return module, nil
		}
		// A corrupt entry falls through to a fresh load.
	}

	result, err, _ := c.sf.Do(moduleID, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
			var module domain.Module
			if err := json.Unmarshal(raw, &module); err == nil {
				return module, nil
			}
		}

		module, err := c.loader.LoadModule(ctx, moduleID)
		if err != nil {
			return domain.Module{}, err
		}

		if raw, err := json.Marshal(module); err == nil {
			// best-effort fill
			_ = c.client.Set(ctx, key, raw, c.ttlWithJitter()).Err()
		}
		return module, nil
	})
	if err != nil {
		return domain.Module{}, err
	}
	return result.(domain.Module), nil
}

func (c *ContentCache) key(moduleID string) string {
	return "module:" + moduleID + ":content"
}

func (c *ContentCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
