package cache_cleanup

import (
	"context"
	"time"

	"portal/pkg/logger"
)

type Cache interface {
	PurgeExpired() int
}

type CacheCleanup struct {
	log      logger.Logger
	cache    Cache
	interval time.Duration
}

func NewCacheCleanup(log logger.Logger, cache Cache, interval time.Duration) *CacheCleanup {
	return &CacheCleanup{
		log:      log,
		cache:    cache,
		interval: interval,
	}
}

func (c *CacheCleanup) TTL() time.Duration {
	return c.interval
}

func (c *CacheCleanup) Do(_ context.Context) error {
	purged := c.cache.PurgeExpired()

	if purged > 0 {
		c.log.With(
			logger.NewField("purged_entries", purged),
		).Info("cache cleanup")
	}

	return nil
}

func (c *CacheCleanup) Info() string {
	return "cache cleanup"
}
