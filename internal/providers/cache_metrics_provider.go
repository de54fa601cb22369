package providers

import (
	"errors"
	"iconpicker/internal/structures"
)

// MetricsCacheProvider counts hits and misses of the asset cache. Content
// rejected as too large counts as a miss on the next read, and is also
// reported here so an undersized cache shows up in the logs.
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
	logger  Logger
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte) error {
	err := c.inner.Set(key, value)
	if errors.Is(err, ErrEntryTooLarge) {
		c.logger.Warnf(TypeApp, "Not cached, raise cache.size: %s", err)
	}
	return err
}

func (c *MetricsCacheProvider) Del(key string) {
	c.inner.Del(key)
}

// NewInstrumentedCacheProvider wraps the asset cache with metrics.
// A disabled cache is returned unwrapped so it does not report phantom misses.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, ok := inner.(*noopCache); ok {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   inner,
		metrics: metrics,
		logger:  logger,
	}
}
