package providers

import (
	"errors"
	"fmt"
	"github.com/coocood/freecache"
	"iconpicker/internal/structures"
	"unsafe"
)

// ErrEntryTooLarge is returned by Set for content freecache cannot hold; a
// single entry may use at most 1/1024 of the cache.
var ErrEntryTooLarge = errors.New("entry too large for cache")

// CacheProviderInterface holds asset content by key. Uploaded assets never
// change, so entries are only dropped on eviction, expiry or Del.
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Del(key string)
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Asset cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := max(conf.Cache.TTL, 0)

	logger.Infof(TypeApp, "Asset cache initialized: %dMB, TTL=%ds, max entry %dKB", conf.Cache.Size, ttl, conf.Cache.Size)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// freecache copies keys internally, so the result is never modified.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) error {
	err := c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
	if errors.Is(err, freecache.ErrLargeEntry) {
		return fmt.Errorf("%w: %s (%d bytes)", ErrEntryTooLarge, key, len(value))
	}
	return err
}

func (c *CacheProvider) Del(key string) {
	c.cache.Del(unsafeStringToBytes(key))
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool)  { return nil, false }
func (n *noopCache) Set(_ string, _ []byte) error { return nil }
func (n *noopCache) Del(_ string)                 {}
