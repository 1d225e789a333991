// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files, with
// github.com/caarlos0/env/v11, which maps variables onto struct fields via
// `env` and `envDefault` tags.
//
//	type Config struct {
//		Dir     string        `env:"DIR" envDefault:"./downloads"`
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("ODASH_DOWNLOAD_")); err != nil {
//		return err
//	}
//
// Parsed values are cached per struct type and prefix. ResetCache clears the
// cache, which is mostly useful in tests.
package config
