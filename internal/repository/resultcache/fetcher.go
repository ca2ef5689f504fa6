// Package resultcache caches search result pages in the key-value store.
package resultcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/db"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
)

const keySegment = "result_cache:"

// fetcher is the decorated search backend.
type fetcher interface {
	Fetch(ctx context.Context, req request.Request) (result.Page, error)
}

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedFetcher serves repeated requests from the store for ttl.
type CachedFetcher struct {
	inner      fetcher
	store      store
	prefix     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator. Keys are prefix + "result_cache:" + sha256(request key).
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner fetcher,
	s store,
	prefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedFetcher {
	return &CachedFetcher{
		inner:      inner,
		store:      s,
		prefix:     prefix,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Fetch returns a cached page or calls the inner fetcher.
// Errors are never cached.
func (c *CachedFetcher) Fetch(ctx context.Context, req request.Request) (result.Page, error) {
	key := c.cacheKey(req)

	if page, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return page, nil
	}

	c.incCache("miss")

	page, err := c.inner.Fetch(ctx, req)
	if err != nil {
		return result.Page{}, fmt.Errorf("fetch page: %w", err)
	}

	c.putToCache(ctx, key, page)
	return page, nil
}

func (c *CachedFetcher) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedFetcher) cacheKey(req request.Request) string {
	h := sha256.Sum256([]byte(req.Key()))
	return c.prefix + keySegment + hex.EncodeToString(h[:])
}

func (c *CachedFetcher) getFromCache(ctx context.Context, key string) (result.Page, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached result page", zap.String("key", key), zap.Error(err))
		}
		return result.Page{}, false
	}
	if len(data) == 0 {
		return result.Page{}, false
	}

	var page result.Page
	if err := json.Unmarshal(data, &page); err != nil {
		c.logger.Warn("Failed to parse cached result page", zap.String("key", key), zap.Error(err))
		return result.Page{}, false
	}
	return page, true
}

func (c *CachedFetcher) putToCache(ctx context.Context, key string, page result.Page) {
	data, err := json.Marshal(page)
	if err != nil {
		c.logger.Warn("Failed to encode result page", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache result page", zap.String("key", key), zap.Error(err))
	}
}
