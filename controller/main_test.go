package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/amazing-thailand/photo-service/asset"
	"github.com/amazing-thailand/photo-service/config"
	"github.com/amazing-thailand/photo-service/entity"
	"github.com/amazing-thailand/photo-service/infra"
	"github.com/amazing-thailand/photo-service/repository"
)

// stubStore records uploads and destroys so handler tests can assert on the
// store traffic a request caused.
type stubStore struct {
	uploads  []asset.UploadTarget
	destroys []string
}

func (s *stubStore) Upload(ctx context.Context, file *asset.File, target asset.UploadTarget) (*asset.Reference, error) {
	s.uploads = append(s.uploads, target)
	storedID := target.Folder + "/" + target.PublicID
	return &asset.Reference{
		URL:      "https://cdn.example.com/media/" + storedID + ".jpg",
		StoredID: storedID,
	}, nil
}

func (s *stubStore) Destroy(ctx context.Context, storedID string) error {
	s.destroys = append(s.destroys, storedID)
	return nil
}

type stubPublisher struct{}

func (stubPublisher) PublishRetireAsset(ctx context.Context, storedID string) error {
	return nil
}

func testConfig() *config.Config {
	cfg := &config.EnvConfig{}
	cfg.Upload.RootFolder = "amazing-thailand-2025"
	cfg.Upload.PhotoMaxBytes = 5 * 1024 * 1024
	cfg.Upload.AvatarMaxBytes = 1024 * 1024
	cfg.Port = "5000"
	return &config.Config{EnvConfig: cfg}
}

// newTestController wires the handlers onto an in-memory database and a
// recording store, mirroring the production assembly in main.go.
func newTestController(t *testing.T) (*Controller, *stubStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Photo{}, &entity.Comment{}))

	repo := &repository.Repository{
		UserRepo:    repository.NewUserRepository(db),
		PhotoRepo:   repository.NewPhotoRepository(db),
		CommentRepo: repository.NewCommentRepository(db),
	}
	testInfra := &infra.Infra{
		Logger: &infra.LoggerClient{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
	}

	store := &stubStore{}
	assets := asset.NewManager(store, stubPublisher{}, nil, asset.ManagerConfig{
		RootFolder: "amazing-thailand-2025",
	})

	return NewController(testConfig(), testInfra, repo, assets), store
}

// multipartForm builds a multipart body with the given text fields and, when
// fileField is non-empty, one image file part.
func multipartForm(t *testing.T, fields map[string]string, fileField, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if fileField != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
