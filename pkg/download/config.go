package download

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/odash/pkg/config"
)

// EnvPrefix prefixes every variable read by LoadConfig.
const EnvPrefix = "ODASH_DOWNLOAD_"

// Config selects and tunes the HTTP trigger and its sink.
type Config struct {
	Storage   string        `env:"STORAGE" envDefault:"local"` // local or s3
	Dir       string        `env:"DIR" envDefault:"./downloads"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30s"`
	MaxBytes  int64         `env:"MAX_BYTES" envDefault:"52428800"`
	UserAgent string        `env:"USER_AGENT" envDefault:"odash-download/1.0"`

	S3Bucket         string `env:"S3_BUCKET"`
	S3Region         string `env:"S3_REGION"`
	S3AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"S3_SECRET_KEY"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	S3Prefix         string `env:"S3_PREFIX"`
	S3BaseURL        string `env:"S3_BASE_URL"`
	S3ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`
}

// LoadConfig reads Config from ODASH_DOWNLOAD_* variables.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewSink builds the sink selected by cfg.Storage.
func NewSink(ctx context.Context, cfg Config, s3opts ...S3Option) (Sink, error) {
	switch cfg.Storage {
	case "", "local":
		return NewLocalSink(cfg.Dir)
	case "s3":
		return NewS3Sink(ctx, S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			Prefix:         cfg.S3Prefix,
			BaseURL:        cfg.S3BaseURL,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, s3opts...)
	}
	return nil, fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, cfg.Storage)
}

// NewFromConfig builds an HTTPTrigger from cfg. Options override values taken
// from cfg.
func NewFromConfig(ctx context.Context, cfg Config, opts ...HTTPOption) (*HTTPTrigger, error) {
	sink, err := NewSink(ctx, cfg)
	if err != nil {
		return nil, err
	}
	base := []HTTPOption{
		WithTimeout(cfg.Timeout),
		WithMaxBytes(cfg.MaxBytes),
		WithUserAgent(cfg.UserAgent),
	}
	return NewHTTPTrigger(sink, append(base, opts...)...)
}
