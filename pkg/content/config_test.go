package content_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/telsite/pkg/content"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     content.Config
		wantErr bool
	}{
		{name: "embed", cfg: content.Config{Source: "embed"}},
		{name: "upper-case kind", cfg: content.Config{Source: "DIR", Dir: "/srv/tel"}},
		{name: "dir without path", cfg: content.Config{Source: "dir"}, wantErr: true},
		{name: "s3", cfg: content.Config{Source: "s3", S3Bucket: "tel", S3Region: "eu-central-1"}},
		{name: "s3 without bucket", cfg: content.Config{Source: "s3", S3Region: "eu-central-1"}, wantErr: true},
		{name: "unknown kind", cfg: content.Config{Source: "ftp"}, wantErr: true},
		{name: "negative cache", cfg: content.Config{Source: "embed", CacheSize: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	cfg := content.Config{Source: "ftp"}
	assert.ErrorIs(t, cfg.Validate(), content.ErrUnknownSource)
}

func TestNewSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("embed", func(t *testing.T) {
		t.Parallel()
		src, err := content.NewSource(ctx, content.Config{Source: content.SourceEmbed, CacheSize: 16}, testFS())
		require.NoError(t, err)
		assert.IsType(t, &content.FSSource{}, src)

		_, err = content.NewSource(ctx, content.Config{Source: content.SourceEmbed}, nil)
		assert.Error(t, err)
	})

	t.Run("dir is cached", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "home.html"), []byte("home"), 0o600))

		src, err := content.NewSource(ctx, content.Config{Source: content.SourceDir, Dir: dir, CacheSize: 8}, nil)
		require.NoError(t, err)
		assert.IsType(t, &content.CachedSource{}, src)

		data, err := src.Open(ctx, "en/home.html")
		require.NoError(t, err)
		assert.Equal(t, "home", string(data))
		assert.NoError(t, src.Ping(ctx))
	})

	t.Run("dir without cache", func(t *testing.T) {
		t.Parallel()
		src, err := content.NewSource(ctx, content.Config{Source: content.SourceDir, Dir: t.TempDir()}, nil)
		require.NoError(t, err)
		assert.IsType(t, &content.FSSource{}, src)
	})

	t.Run("s3 with injected client", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)

		src, err := content.NewSource(ctx, content.Config{
			Source:   content.SourceS3,
			S3Bucket: "tel-pages",
			S3Region: "eu-central-1",
		}, nil, content.WithS3Client(client))
		require.NoError(t, err)
		assert.IsType(t, &content.S3Source{}, src)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		_, err := content.NewSource(ctx, content.Config{Source: "ftp"}, testFS())
		assert.ErrorIs(t, err, content.ErrUnknownSource)
	})
}
