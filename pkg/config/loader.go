package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs that check their own values
// after parsing.
type Validator interface {
	Validate() error
}

// configCache stores one parsed value per config type.
type configCache struct {
	mu      sync.RWMutex
	values  map[string]any
	loaders map[string]*loader
}

// loader guards a single parse attempt. Callers waiting on the same attempt
// all observe its error.
type loader struct {
	once sync.Once
	err  error
}

var (
	globalCache = &configCache{
		values:  make(map[string]any),
		loaders: make(map[string]*loader),
	}

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment. Variables
// that are already set win over file values, and earlier files win over later
// ones. With no arguments it loads ./.env and ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v. Each config type is parsed and
// validated once; later calls are served from the cache.
//
// The default .env file is loaded on first use if present.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = LoadEnv()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if cached, ok := cachedValue[T](typeName); ok {
		*v = cached
		return nil
	}

	globalCache.mu.Lock()
	l, exists := globalCache.loaders[typeName]
	if !exists {
		l = new(loader)
		globalCache.loaders[typeName] = l
	}
	globalCache.mu.Unlock()

	l.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			l.err = errors.Join(ErrParsingConfig, err)
			return
		}
		if val, ok := any(&parsed).(Validator); ok {
			if err := val.Validate(); err != nil {
				l.err = errors.Join(ErrInvalidConfig, err)
				return
			}
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = parsed
		globalCache.mu.Unlock()
	})
	if l.err != nil {
		// allow a retry once the environment has been fixed
		globalCache.mu.Lock()
		if globalCache.loaders[typeName] == l {
			delete(globalCache.loaders, typeName)
		}
		globalCache.mu.Unlock()
		return l.err
	}

	if cached, ok := cachedValue[T](typeName); ok {
		*v = cached
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	globalCache.values = make(map[string]any)
	globalCache.loaders = make(map[string]*loader)
}

func cachedValue[T any](typeName string) (T, bool) {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()

	cached, ok := globalCache.values[typeName]
	if !ok {
		var zero T
		return zero, false
	}
	return cached.(T), true
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.PkgPath() + "." + t.String()
}
