package cache

import "time"

// BytesCache stores serialized endpoint responses with a TTL. Handlers use
// it to avoid re-running the solver for identical request bodies inside a
// short window.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
