package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"cybershield-academy/internal/domain"
)

// ModuleLoader fetches module content from a backing store.
type ModuleLoader interface {
	LoadModule(ctx context.Context, moduleID string) (domain.Module, error)
}

// ContentCache caches module content with TTL to avoid repeated store hits.
type ContentCache struct {
	loader ModuleLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedModule
}

type cachedModule struct {
	module    domain.Module
	expiresAt time.Time
}

func NewContentCache(loader ModuleLoader, ttl time.Duration) *ContentCache {
	return &ContentCache{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedModule),
	}
}

func (c *ContentCache) GetModule(ctx context.Context, moduleID string) (domain.Module, error) {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[moduleID]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.module, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do(moduleID, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[moduleID]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.module, nil
		}
		c.mu.RUnlock()

		module, err := c.loader.LoadModule(ctx, moduleID)
		if err != nil {
			return domain.Module{}, err
		}

		c.mu.Lock()
		c.cache[moduleID] = cachedModule{
			module:    module,
			expiresAt: now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return module, nil
	})
	if err != nil {
		return domain.Module{}, err
	}
	return result.(domain.Module), nil
}

func (c *ContentCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}

// StaticModuleLoader serves modules from an in-memory map (built-in catalog,
// tests, demos).
type StaticModuleLoader struct {
	modules map[string]domain.Module
}

func NewStaticModuleLoader(modules map[string]domain.Module) *StaticModuleLoader {
	return &StaticModuleLoader{modules: modules}
}

func (l *StaticModuleLoader) LoadModule(_ context.Context, moduleID string) (domain.Module, error) {
	if m, ok := l.modules[moduleID]; ok {
		return m, nil
	}
	return domain.Module{}, domain.ErrModuleNotFound
}
