// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     without overriding variables that are already set.
//   - Load parses the environment into a struct annotated with `env` tags,
//     validates it when the struct implements Validator, and caches the result
//     per type so later calls skip parsing.
//   - MustLoad panics instead of returning an error.
//   - ResetCache forgets every cached type; tests use it between cases.
//
// Usage:
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	    AgeMax   int    `env:"VALIDATE_AGE_MAX" envDefault:"110"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors can be compared with errors.Is: ErrParsingConfig, ErrInvalidConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer.
package config
