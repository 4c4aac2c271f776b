// Package ratelimiter throttles callers with a token bucket.
//
// Each key (typically a client IP) owns a bucket holding up to Capacity
// tokens; RefillRate tokens are added every RefillInterval. A request spends
// one token and is denied once the bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity: 30, RefillRate: 1, RefillInterval: 2 * time.Second,
//	})
//	r.With(ratelimiter.Middleware(bucket, clientip.GetIP)).Post("/validate", h)
//
// Middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on 429s.
package ratelimiter
