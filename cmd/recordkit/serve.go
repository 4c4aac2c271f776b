package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/intake"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/ratelimiter"
)

// serveCmd runs the HTTP intake until interrupted.
func serveCmd(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitError
	}
	log := newLogger(cfg, stderr)
	logger.SetAsDefault(log)

	tables, err := loadTables(cfg.TablesFile)
	if err != nil {
		log.ErrorContext(ctx, "failed to load reference tables", logger.Error(err))
		return exitError
	}

	var opts []intake.Option
	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			log.ErrorContext(ctx, "invalid rate limit configuration", logger.Error(err))
			return exitError
		}
		opts = append(opts, intake.WithRateLimit(bucket))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	router := intake.Router(newProcessor(cfg, tables, log), log, opts...)
	if err := srv.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "http server stopped", logger.Error(err))
		return exitError
	}
	return exitOK
}
