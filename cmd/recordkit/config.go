package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/batch"
	"github.com/dmitrymomot/recordkit/pkg/clientip"
	"github.com/dmitrymomot/recordkit/pkg/config"
	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/ratelimiter"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/reference"
	"github.com/dmitrymomot/recordkit/pkg/requestid"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Config is the application configuration.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"recordkit"`

	// LogLevel and LogFormat override the environment preset when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	AgeMin      int `env:"VALIDATE_AGE_MIN" envDefault:"0"`
	AgeMax      int `env:"VALIDATE_AGE_MAX" envDefault:"110"`
	MinPassword int `env:"VALIDATE_MIN_PASSWORD" envDefault:"8"`
	Concurrency int `env:"VALIDATE_CONCURRENCY" envDefault:"1"`

	MaxBalance float64 `env:"VALIDATE_MAX_BALANCE" envDefault:"1e13"`

	TablesFile string `env:"REFERENCE_TABLES_FILE"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	return validator.Apply(
		validator.MinNum("VALIDATE_AGE_MIN", c.AgeMin, 0),
		validator.MinNum("VALIDATE_AGE_MAX", c.AgeMax, c.AgeMin),
		validator.MinNum("VALIDATE_MIN_PASSWORD", c.MinPassword, 1),
		validator.Between("VALIDATE_CONCURRENCY", c.Concurrency, 1, 256),
		validator.Between("VALIDATE_MAX_BALANCE", c.MaxBalance, 1, record.DefaultMaxBalance),
		validator.Required("APP_NAME", strings.TrimSpace(c.Name)),
		validator.When(c.LogFormat != "",
			validator.InSet("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{"json", "text"})),
		validator.When(c.LogLevel != "",
			validator.InSet("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"})),
	)
}

func loadConfig() (Config, error) {
	var cfg Config
	err := config.Load(&cfg)
	return cfg, err
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	// values were checked by Config.Validate
	if level, err := logger.ParseLevel(cfg.LogLevel); cfg.LogLevel != "" && err == nil {
		opts = append(opts, logger.WithLevel(level))
	}
	if format, err := logger.ParseFormat(cfg.LogFormat); cfg.LogFormat != "" && err == nil {
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...)
}

// loadTables reads path, or returns the built-in tables when path is empty.
func loadTables(path string) (reference.Tables, error) {
	if path == "" {
		return reference.Default(), nil
	}
	return reference.LoadFile(path)
}

func newProcessor(cfg Config, tables reference.Tables, log *slog.Logger) *batch.Processor {
	v := record.New(tables,
		record.WithAgeRange(cfg.AgeMin, cfg.AgeMax),
		record.WithMinPasswordLength(cfg.MinPassword),
		record.WithMaxBalance(cfg.MaxBalance),
	)
	return batch.New(v,
		batch.WithLogger(log),
		batch.WithConcurrency(cfg.Concurrency),
	)
}
