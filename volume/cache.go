package volume

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"

	"seoagent/config"
	"seoagent/types"
)

// Cache is a Redis read-through decorator over another Service. Volume data
// moves slowly, so repeated analyses of overlapping keyword sets skip the
// upstream lookup. Cache failures degrade to the inner service.
type Cache struct {
	rdb   *redis.Client
	inner Service
}

func NewCache(addr string, inner Service) *Cache {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &Cache{rdb: rdb, inner: inner}
}

func cacheKey(term string, tr types.TimeRange) string {
	return fmt.Sprintf("volume:%s:%s", tr, term)
}

func (c *Cache) Volume(ctx context.Context, term string, tr types.TimeRange) (int, error) {
	key := cacheKey(term, tr)

	if val, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if n, perr := strconv.Atoi(val); perr == nil && n >= 0 {
			return n, nil
		}
	} else if err != redis.Nil {
		log.Printf("[volume] Cache read failed for %q: %v", term, err)
	}

	n, err := c.inner.Volume(ctx, term, tr)
	if err != nil {
		return 0, err
	}

	if err := c.rdb.Set(ctx, key, strconv.Itoa(n), config.VolumeCacheTTL).Err(); err != nil {
		log.Printf("[volume] Cache write failed for %q: %v", term, err)
	}
	return n, nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
