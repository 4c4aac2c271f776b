package intake

import "github.com/dmitrymomot/recordkit/pkg/ratelimiter"

// Option configures the intake router.
type Option func(*options)

type options struct {
	limiter *ratelimiter.Bucket
}

// WithRateLimit throttles POST /validate per client IP. Nil disables it.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(o *options) { o.limiter = b }
}
