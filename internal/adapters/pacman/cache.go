package pacman

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const ownerShards = 16

// ownerCache memoizes owner lookups. Keys are spread over shards by their
// xxhash digest so that concurrent workers rarely contend on one lock.
type ownerCache struct {
	shards [ownerShards]ownerShard
}

type ownerShard struct {
	mu      sync.RWMutex
	entries map[string][]string
}

func newOwnerCache() *ownerCache {
	c := &ownerCache{}
	for i := range c.shards {
		c.shards[i].entries = make(map[string][]string)
	}
	return c
}

func (c *ownerCache) shard(key string) *ownerShard {
	return &c.shards[xxhash.Sum64String(key)%ownerShards]
}

func (c *ownerCache) get(key string) ([]string, bool) {
	s := c.shard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	owners, ok := s.entries[key]
	return slices.Clone(owners), ok
}

func (c *ownerCache) put(key string, owners []string) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = slices.Clone(owners)
}
