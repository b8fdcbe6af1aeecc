package namecache

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// UnknownUser is the placeholder for identities with no profile row.
const UnknownUser = "Unknown User"

// LookupFunc batch-resolves display names for the given identities. Missing
// identities are simply absent from the returned map.
type LookupFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)

// Cache memoizes display-name lookups for the lifetime of one request. Each
// identity is fetched at most once no matter how often member and message
// lists reference it. Not shared across requests.
type Cache struct {
	mu     sync.Mutex
	lookup LookupFunc
	names  map[uuid.UUID]string
}

func New(lookup LookupFunc) *Cache {
	return &Cache{
		lookup: lookup,
		names:  make(map[uuid.UUID]string),
	}
}

// Resolve returns the display name for one identity.
func (c *Cache) Resolve(ctx context.Context, id uuid.UUID) (string, error) {
	names, err := c.ResolveAll(ctx, []uuid.UUID{id})
	if err != nil {
		return "", err
	}
	return names[id], nil
}

// ResolveAll returns display names for every given identity, fetching only
// the ones not already cached. Unresolvable identities map to UnknownUser.
func (c *Cache) ResolveAll(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var missing []uuid.UUID
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := c.names[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := c.lookup(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, id := range missing {
			name, ok := fetched[id]
			if !ok || name == "" {
				name = UnknownUser
			}
			c.names[id] = name
		}
	}

	out := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		out[id] = c.names[id]
	}
	return out, nil
}
