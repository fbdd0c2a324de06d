package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvConfigDefaults(t *testing.T) {
	cfg := LoadEnvConfig()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "amazing-thailand-2025", cfg.Upload.RootFolder)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.PhotoMaxBytes)
	assert.Equal(t, int64(1024*1024), cfg.Upload.AvatarMaxBytes)
	assert.Equal(t, 10*time.Second, cfg.Minio.UploadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Minio.DestroyTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_PHOTO_MAX_BYTES", "1048576")
	t.Setenv("MINIO_UPLOAD_TIMEOUT", "30s")
	t.Setenv("DEPLOY_ENV", "production")
	t.Setenv("MINIO_PUBLIC_BASE_URL", "https://cdn.example.com/")

	cfg := LoadEnvConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(1048576), cfg.Upload.PhotoMaxBytes)
	assert.Equal(t, 30*time.Second, cfg.Minio.UploadTimeout)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://cdn.example.com", cfg.Minio.PublicBaseURL)
}

func TestLoadEnvConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("UPLOAD_PHOTO_MAX_BYTES", "not-a-number")
	t.Setenv("MINIO_UPLOAD_TIMEOUT", "soon")

	cfg := LoadEnvConfig()

	assert.Equal(t, int64(5*1024*1024), cfg.Upload.PhotoMaxBytes)
	assert.Equal(t, 10*time.Second, cfg.Minio.UploadTimeout)
}
