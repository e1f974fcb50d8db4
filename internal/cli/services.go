package cli

import (
	"context"

	"github.com/ortfo/gui/pkg/cache"
	"github.com/ortfo/gui/pkg/config"
	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/layoutsvc"
	"github.com/ortfo/gui/pkg/layoutsvc/local"
	"github.com/ortfo/gui/pkg/layoutsvc/remote"
)

// =============================================================================
// Service Factory
// =============================================================================

// layoutService is an open layout service. Close releases its cache.
type layoutService struct {
	blocks.LayoutService
	name  string
	cache cache.Cache
}

func (s *layoutService) Close() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Close()
}

// newService builds the configured layout service, wrapped in the configured
// cache.
func (c *CLI) newService(ctx context.Context) (*layoutService, error) {
	var (
		svc  blocks.LayoutService
		name string
	)
	if c.Config.Layout.Service == config.ServiceLocal {
		svc, name = local.New(c.Logger), local.Name
	} else {
		client, err := remote.New(c.Config.Layout.Service, nil)
		if err != nil {
			return nil, err
		}
		svc, name = client, client.Name()
	}

	if c.Config.Cache.Backend == config.CacheNone {
		return &layoutService{LayoutService: svc, name: name}, nil
	}

	store, keyer, err := newCache(ctx, c.Config.Cache)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("caching positions", "backend", c.Config.Cache.Backend, "service", name)
	return &layoutService{
		LayoutService: layoutsvc.NewCached(svc, store, keyer, name, c.Config.Cache.TTL, c.Logger),
		name:          name,
		cache:         store,
	}, nil
}

// newConverter returns a converter backed by svc with the configured timeout.
func (c *CLI) newConverter(svc blocks.LayoutService) *blocks.Converter {
	return blocks.NewConverter(svc, c.Config.Layout.Timeout, c.Logger)
}

func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, cache.Keyer, error) {
	switch cfg.Backend {
	case config.CacheFile:
		fc, err := cache.NewFileCache(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return fc, cache.NewDefaultKeyer(), nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: cfg.RedisAddr})
		if err != nil {
			return nil, nil, err
		}
		return rc, cache.NewScopedKeyer(nil, cfg.RedisPrefix), nil
	}
	return cache.NewNullCache(), cache.NewDefaultKeyer(), nil
}
