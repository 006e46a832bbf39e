package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/coocood/freecache"
	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger().WithField("module", "cache")

var ErrCacheMiss = errors.New("cache miss")

// TieredCache combines a local in-process cache with an optional shared
// remote cache. Values are JSON-encoded; the remote tier lets multiple
// dashboard replicas share session state.
type TieredCache struct {
	localCache  *freecache.Cache
	remoteCache *RedisCache
}

// NewTieredCache creates the tiered cache. cacheSize is the local tier size
// in MB; remote tier is enabled only when a redis address is configured.
func NewTieredCache(cacheSize int, redisAddress, redisPrefix string) (*TieredCache, error) {
	if cacheSize <= 0 {
		cacheSize = 10
	}

	var remoteCache *RedisCache
	if redisAddress != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		remoteCache, err = InitRedisCache(ctx, redisAddress, redisPrefix)
		if err != nil {
			logger.WithError(err).Errorf("error initializing remote redis cache. address: %v", redisAddress)
			return nil, err
		}
	}

	return &TieredCache{
		localCache:  freecache.NewCache(cacheSize * 1024 * 1024),
		remoteCache: remoteCache,
	}, nil
}

func (cache *TieredCache) Set(key string, value interface{}, expiration time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = cache.localCache.Set([]byte(key), encoded, int(expiration.Seconds()))
	if err != nil {
		logger.WithError(err).Warnf("error setting local cache key %v", key)
	}

	if cache.remoteCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return cache.remoteCache.SetBytes(ctx, key, encoded, expiration)
	}
	return nil
}

func (cache *TieredCache) Get(key string, returnValue interface{}) error {
	encoded, err := cache.localCache.Get([]byte(key))
	if err == nil {
		return json.Unmarshal(encoded, returnValue)
	}

	if cache.remoteCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		encoded, err := cache.remoteCache.GetBytes(ctx, key)
		if err != nil {
			return ErrCacheMiss
		}
		// refill the local tier on a remote hit
		cache.localCache.Set([]byte(key), encoded, 0)
		return json.Unmarshal(encoded, returnValue)
	}

	return ErrCacheMiss
}

func (cache *TieredCache) Delete(key string) {
	cache.localCache.Del([]byte(key))

	if cache.remoteCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cache.remoteCache.Delete(ctx, key)
	}
}
