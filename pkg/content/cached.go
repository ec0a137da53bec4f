package content

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/telsite/pkg/cache"
)

// CachedSource keeps recently read files of another source in an LRU cache.
// Concurrent misses for the same name share one read of the underlying source.
// Errors, ErrNotFound included, are never cached.
type CachedSource struct {
	next  Source
	files *cache.LRUCache[string, []byte]
	group singleflight.Group
}

// NewCachedSource wraps next with a cache holding up to size files.
// A positive ttl expires cached files so edits in the underlying source show up.
func NewCachedSource(next Source, size int, ttl time.Duration) *CachedSource {
	return &CachedSource{
		next:  next,
		files: cache.NewLRUCache[string, []byte](size, cache.WithTTL(ttl)),
	}
}

// Open implements Source.
func (s *CachedSource) Open(ctx context.Context, name string) ([]byte, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if data, ok := s.files.Get(name); ok {
		return data, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		data, err := s.next.Open(ctx, name)
		if err != nil {
			return nil, err
		}
		s.files.Put(name, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Ping implements Source by delegating to the wrapped source.
func (s *CachedSource) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}
