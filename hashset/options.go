// Package hashset provides two separate-chaining hash sets: Set iterates in bucket
// order and OrderedSet iterates in insertion order. Neither is safe for concurrent use.
package hashset

import (
	"hash/maphash"
)

const (
	defaultBuckets    = 8
	defaultLoadFactor = 0.75
)

// Hasher computes the hash of a key
type Hasher[K comparable] func(K) uint64

// Option configures a set on construction
type Option[K comparable] func(*config[K])

type config[K comparable] struct {
	buckets    int
	loadFactor float64
	hasher     Hasher[K]
}

// WithBuckets sets the initial number of buckets
func WithBuckets[K comparable](n int) Option[K] {
	return func(c *config[K]) {
		if n > 0 {
			c.buckets = n
		}
	}
}

// WithLoadFactor sets the load factor at which the bucket table doubles
func WithLoadFactor[K comparable](f float64) Option[K] {
	return func(c *config[K]) {
		if f > 0 {
			c.loadFactor = f
		}
	}
}

// WithHasher replaces the default hash function
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(c *config[K]) {
		if h != nil {
			c.hasher = h
		}
	}
}

func newConfig[K comparable](opts []Option[K]) config[K] {
	cfg := config[K]{
		buckets:    defaultBuckets,
		loadFactor: defaultLoadFactor,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.hasher == nil {
		seed := maphash.MakeSeed()
		cfg.hasher = func(k K) uint64 {
			return maphash.Comparable(seed, k)
		}
	}
	return cfg
}

// shouldGrow returns true if inserting into a table of the given size would go past
// the load factor
func (c *config[K]) shouldGrow(size, buckets int) bool {
	return float64(size)/float64(buckets) >= c.loadFactor
}
