package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a loaded catalog is reused before re-reading it
const DefaultTTL = 10 * time.Second

// Provider hands out catalog snapshots, re-reading the source at most
// once per TTL. Concurrent callers share a single in-flight load.
type Provider struct {
	src    Source
	cache  *expirable.LRU[string, *Catalog]
	group  singleflight.Group
	logger hclog.Logger
}

// NewProvider creates a Provider. A ttl of zero or less disables caching.
func NewProvider(src Source, ttl time.Duration, logger hclog.Logger) *Provider {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p := &Provider{
		src:    src,
		logger: logger,
	}
	if ttl > 0 {
		p.cache = expirable.NewLRU[string, *Catalog](1, nil, ttl)
	}
	return p
}

// Catalog returns the cached snapshot or loads a fresh one
func (p *Provider) Catalog(ctx context.Context) (*Catalog, error) {
	key := p.src.Path
	if p.cache != nil {
		if c, ok := p.cache.Get(key); ok {
			return c, nil
		}
	}

	// The load is shared by every waiting caller, so one caller going away
	// must not cancel it for the others.
	loadCtx := context.WithoutCancel(ctx)
	v, err, shared := p.group.Do(key, func() (interface{}, error) {
		c, err := Load(loadCtx, p.src, p.logger)
		if err != nil {
			return nil, err
		}
		if p.cache != nil {
			p.cache.Add(key, c)
		}
		return c, nil
	})
	if err != nil {
		p.logger.Warn("catalog load failed", "path", key, "error", err)
		return nil, err
	}

	c := v.(*Catalog)
	p.logger.Debug("catalog loaded", "path", key, "profiles", c.Len(), "shared", shared)
	return c, nil
}

// Invalidate drops the cached snapshot
func (p *Provider) Invalidate() {
	if p.cache != nil {
		p.cache.Purge()
	}
}
