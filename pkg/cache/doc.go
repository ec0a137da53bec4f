// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// cache with optional entry expiry.
//
// The cache evicts the least recently used item once it holds more than its
// capacity. With WithTTL, entries also expire a fixed time after they were
// written, and expired entries are dropped when they are next read.
//
//	pages := cache.NewLRUCache[string, []byte](256, cache.WithTTL(5*time.Minute))
//	pages.Put("de/help", body)
//	if body, ok := pages.Get("de/help"); ok {
//		// serve body
//	}
//
// SetEvictCallback registers a function called for every evicted, expired,
// removed or cleared entry. It runs with the cache lock held and must not
// call back into the cache.
//
// Get, Put and Remove are O(1).
package cache
