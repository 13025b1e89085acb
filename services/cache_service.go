package services

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CacheService stores serialized listing payloads for a fixed TTL window.
// Writes elsewhere never invalidate entries early: readers may see content
// up to one window stale, which the index listing accepts. Entries keep the
// exact bytes that were cached, so repeated hits are byte-identical.
type CacheService struct {
	store *gocache.Cache
}

func NewCacheService(ttl time.Duration) *CacheService {
	return &CacheService{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (s *CacheService) Get(key string) ([]byte, bool) {
	value, found := s.store.Get(key)
	if !found {
		return nil, false
	}
	payload, ok := value.([]byte)
	return payload, ok
}

func (s *CacheService) Set(key string, payload []byte) {
	s.store.SetDefault(key, payload)
}

// Flush drops every entry. Used by tests and ops tooling; normal request
// handling relies on TTL expiry only.
func (s *CacheService) Flush() {
	s.store.Flush()
}
