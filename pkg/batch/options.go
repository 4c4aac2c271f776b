package batch

import "log/slog"

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithConcurrency sets how many records are validated at once. Values below
// 2 keep processing sequential.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		p.concurrency = max(n, 1)
	}
}
