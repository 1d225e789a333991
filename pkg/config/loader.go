package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tweaks how a configuration struct is parsed.
type Option func(*env.Options)

// WithPrefix prepends prefix to every env tag, e.g. "ODASH_".
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process environment.
// Results parsed this way are not cached.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

var (
	cacheMu sync.Mutex
	cache   = map[string]any{}

	dotenvOnce sync.Once
)

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads ./.env.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v using its env struct tags.
// The default .env file is read once per process if present. A successfully
// parsed value is cached per type and prefix, so later calls are cheap and
// return the same values.
//
//	type DownloadConfig struct {
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg DownloadConfig
//	err := config.Load(&cfg, config.WithPrefix("ODASH_DOWNLOAD_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	cacheable := o.Environment == nil
	key := cacheKey[T](o.Prefix)

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cacheable {
		if cached, ok := cache[key]; ok {
			*v = cached.(T)
			return nil
		}
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if cacheable {
		cache[key] = parsed
	}
	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load re-parses.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

func cacheKey[T any](prefix string) string {
	return prefix + "|" + reflect.TypeFor[T]().String()
}
