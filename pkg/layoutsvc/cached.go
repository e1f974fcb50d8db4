package layoutsvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ortfo/gui/pkg/cache"
	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/observability"
)

// cacheKeyType labels positions entries in cache hooks.
const cacheKeyType = "positions"

// Cached is a [blocks.LayoutService] that stores the results of another
// service. Cache failures are logged and never fail a computation; service
// failures are never cached.
type Cached struct {
	Service blocks.LayoutService
	Cache   cache.Cache
	Keyer   cache.Keyer
	// Name identifies the wrapped service in cache keys, so that results of
	// different services never mix.
	Name   string
	TTL    time.Duration
	Logger *log.Logger
}

// NewCached wraps svc. A nil keyer selects [cache.NewDefaultKeyer] and a
// nil logger log.Default().
func NewCached(svc blocks.LayoutService, c cache.Cache, keyer cache.Keyer, name string, ttl time.Duration, logger *log.Logger) *Cached {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Cached{
		Service: svc,
		Cache:   c,
		Keyer:   keyer,
		Name:    name,
		TTL:     ttl,
		Logger:  logger,
	}
}

// Layout returns the cached positions of d, computing and storing them on a
// miss.
func (c *Cached) Layout(ctx context.Context, d content.Description) (content.Translated[content.Positioned], error) {
	hash, err := cache.HashJSON(d)
	if err != nil {
		c.Logger.Debug("description not hashable, bypassing cache", "err", err)
		return c.Service.Layout(ctx, d)
	}
	key := c.Keyer.LayoutKey(hash, cache.LayoutKeyOpts{Service: c.Name})
	hooks := observability.Cache()

	if out, ok := c.lookup(ctx, key); ok {
		hooks.OnCacheHit(ctx, cacheKeyType)
		return out, nil
	}
	hooks.OnCacheMiss(ctx, cacheKeyType)

	out, err := c.Service.Layout(ctx, d)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(out)
	if err != nil {
		c.Logger.Warn("cannot encode positions for caching", "err", err)
		return out, nil
	}
	if err := c.Cache.Set(ctx, key, data, c.TTL); err != nil {
		c.Logger.Warn("cache write failed", "key", key, "err", err)
		return out, nil
	}
	hooks.OnCacheSet(ctx, cacheKeyType, len(data))
	return out, nil
}

func (c *Cached) lookup(ctx context.Context, key string) (content.Translated[content.Positioned], bool) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err != nil {
		c.Logger.Warn("cache read failed", "key", key, "err", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var out content.Translated[content.Positioned]
	if err := json.Unmarshal(data, &out); err != nil {
		c.Logger.Debug("discarding unreadable cache entry", "key", key, "err", err)
		return nil, false
	}
	return out, true
}

var _ blocks.LayoutService = (*Cached)(nil)
