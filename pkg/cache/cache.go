// Package cache provides a size-bounded in-memory cache with expiring entries.
package cache

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TTL is an LRU cache where every entry expires ttl after it was set. Safe for concurrent use.
type TTL[V any] struct {
	lru *expirable.LRU[string, V]
}

// New makes a cache holding at most size entries for ttl each
func New[V any](size int, ttl time.Duration) (*TTL[V], error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid cache size %d", size)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid cache ttl %v", ttl)
	}
	return &TTL[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}, nil
}

// Get returns value for key, expired entries are reported as missing
func (c *TTL[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Set stores value for key, replacing the previous value and restarting its ttl
func (c *TTL[V]) Set(key string, value V) {
	c.lru.Add(key, value)
}

// Delete removes key from the cache
func (c *TTL[V]) Delete(key string) {
	c.lru.Remove(key)
}

// Len returns number of entries
func (c *TTL[V]) Len() int {
	return c.lru.Len()
}
