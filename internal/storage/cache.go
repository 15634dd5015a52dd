package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion invalidates cached entries written by an older layout
const CacheSchemaVersion = "1.0"

type cachedEntry struct {
	version string
	data    []byte
}

// CachedStore is a read-through, write-through LRU in front of another Store.
// Misses (ErrNotFound) are not cached.
type CachedStore struct {
	inner Store
	lru   *expirable.LRU[string, *cachedEntry]
}

// NewCachedStore wraps inner with an expiring LRU of the given size and TTL
func NewCachedStore(inner Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func (s *CachedStore) Load(ctx context.Context, key string) ([]byte, error) {
	if entry, ok := s.lru.Get(key); ok {
		if entry.version == CacheSchemaVersion {
			return copyBytes(entry.data), nil
		}
		s.lru.Remove(key)
	}

	data, err := s.inner.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.lru.Remove(key)
		}
		return nil, err
	}
	s.lru.Add(key, &cachedEntry{version: CacheSchemaVersion, data: copyBytes(data)})
	return data, nil
}

func (s *CachedStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.inner.Save(ctx, key, data); err != nil {
		s.lru.Remove(key)
		return err
	}
	s.lru.Add(key, &cachedEntry{version: CacheSchemaVersion, data: copyBytes(data)})
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	s.lru.Remove(key)
	return s.inner.Delete(ctx, key)
}

// Len reports how many keys are cached
func (s *CachedStore) Len() int {
	return s.lru.Len()
}

func (s *CachedStore) Close() error {
	s.lru.Purge()
	return s.inner.Close()
}
