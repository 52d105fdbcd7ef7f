package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. It fronts
// the ranking endpoint: a hit serves the serialized response directly, a
// miss or error falls through to the pipeline.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
