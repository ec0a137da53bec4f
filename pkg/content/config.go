package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
)

// Source kinds accepted by CONTENT_SOURCE.
const (
	SourceEmbed = "embed"
	SourceDir   = "dir"
	SourceS3    = "s3"
)

// Config selects and configures the content source.
type Config struct {
	Source    string        `env:"CONTENT_SOURCE" envDefault:"embed"`
	Dir       string        `env:"CONTENT_DIR" envDefault:"./content"`
	CacheSize int           `env:"CONTENT_CACHE_SIZE" envDefault:"128"`
	CacheTTL  time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"5m"`

	S3Bucket         string `env:"CONTENT_S3_BUCKET"`
	S3Region         string `env:"CONTENT_S3_REGION"`
	S3AccessKeyID    string `env:"CONTENT_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"CONTENT_S3_SECRET_KEY"`
	S3Endpoint       string `env:"CONTENT_S3_ENDPOINT"`
	S3Prefix         string `env:"CONTENT_S3_PREFIX"`
	S3ForcePathStyle bool   `env:"CONTENT_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Validate checks the source kind and its required settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Source) {
	case SourceEmbed:
	case SourceDir:
		if c.Dir == "" {
			return fmt.Errorf("CONTENT_DIR is required for source %q", SourceDir)
		}
	case SourceS3:
		if c.S3Bucket == "" || c.S3Region == "" {
			return fmt.Errorf("CONTENT_S3_BUCKET and CONTENT_S3_REGION are required for source %q", SourceS3)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("CONTENT_CACHE_SIZE must not be negative")
	}
	return nil
}

// NewSource builds the source described by cfg. embedded is used for
// SourceEmbed. A positive CacheSize wraps dir and s3 sources in a CachedSource;
// the embedded source is served from memory and never cached.
func NewSource(ctx context.Context, cfg Config, embedded fs.FS, opts ...S3Option) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var src Source
	switch strings.ToLower(cfg.Source) {
	case SourceEmbed:
		if embedded == nil {
			return nil, fmt.Errorf("%w: no embedded content", ErrUnknownSource)
		}
		return NewFSSource(embedded), nil
	case SourceDir:
		src = NewFSSource(os.DirFS(cfg.Dir))
	case SourceS3:
		s3src, err := NewS3Source(ctx, S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			Prefix:         cfg.S3Prefix,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, opts...)
		if err != nil {
			return nil, err
		}
		src = s3src
	}

	if cfg.CacheSize > 0 {
		src = NewCachedSource(src, cfg.CacheSize, cfg.CacheTTL)
	}
	return src, nil
}
