package location

import (
	"context"
	"strings"

	"weatherlookup/internal/store"
)

// CachedResolver memoizes successful resolutions for a bounded time window and
// short-circuits a request for the city that is already displayed. It is the
// sole writer of its cache.
type CachedResolver struct {
	resolver *Resolver
	cache    *store.Cache[Record]

	// current returns the record backing the currently-displayed city, if any.
	current func() (Record, bool)
}

func NewCachedResolver(resolver *Resolver, cache *store.Cache[Record], current func() (Record, bool)) *CachedResolver {
	if current == nil {
		current = func() (Record, bool) { return Record{}, false }
	}
	return &CachedResolver{
		resolver: resolver,
		cache:    cache,
		current:  current,
	}
}

// Resolve returns the record for cityText, consulting the displayed record and
// the cache before resolving over the network. A failed resolution never
// writes to the cache.
func (c *CachedResolver) Resolve(ctx context.Context, cityText string, coords *Coordinates) (Record, error) {
	key := CacheKey(cityText)

	if key != "" {
		if cur, ok := c.current(); ok && strings.EqualFold(cur.Name, key) {
			return cur, nil
		}
		if rec, ok := c.cache.Get(key); ok {
			return rec, nil
		}
	}

	rec, err := c.resolver.Resolve(ctx, cityText, coords)
	if err != nil {
		return Record{}, err
	}
	if key != "" {
		c.cache.Put(key, rec)
	}
	return rec, nil
}
