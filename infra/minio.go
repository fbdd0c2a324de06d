package infra

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/amazing-thailand/photo-service/asset"
	"github.com/amazing-thailand/photo-service/config"
)

// MinioClient is the asset store collaborator: one bucket holding every
// uploaded image under the configured root folder.
type MinioClient struct {
	Client        *minio.Client
	Admin         *madmin.AdminClient
	Bucket        string
	PublicBaseURL string
	Endpoint      string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}
	if cfg.Minio.AccessKey == "" || cfg.Minio.SecretKey == "" {
		panic("MinIO credentials are not configured")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	madminClient, err := madmin.New(endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	return &MinioClient{
		Client:        minioClient,
		Admin:         madminClient,
		Bucket:        cfg.Minio.Bucket,
		PublicBaseURL: cfg.Minio.PublicBaseURL,
		Endpoint:      endpoint,
	}
}

// EnsureBucket creates the media bucket when it does not exist yet.
func (m *MinioClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", m.Bucket, err)
	}
	return nil
}

// Upload stores the file under target and returns the public URL plus the
// extensionless stored id used for later deletion.
func (m *MinioClient) Upload(ctx context.Context, file *asset.File, target asset.UploadTarget) (*asset.Reference, error) {
	objectName := target.Folder + "/" + target.PublicID + objectExt(file)

	_, err := m.Client.PutObject(ctx, m.Bucket, objectName, file.Reader, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}

	return &asset.Reference{
		URL:      fmt.Sprintf("%s/%s/%s", m.PublicBaseURL, m.Bucket, objectName),
		StoredID: target.Folder + "/" + target.PublicID,
	}, nil
}

// Destroy removes the object behind an extensionless stored id. The actual
// key carries a file extension, so the object is resolved by prefix listing.
// A missing object is treated as already gone.
func (m *MinioClient) Destroy(ctx context.Context, storedID string) error {
	if storedID == "" {
		return nil
	}
	for object := range m.Client.ListObjects(ctx, m.Bucket, minio.ListObjectsOptions{
		Prefix:    storedID,
		Recursive: true,
	}) {
		if object.Err != nil {
			return fmt.Errorf("failed to list objects for %s: %w", storedID, object.Err)
		}
		if stripObjectExt(object.Key) != storedID && object.Key != storedID {
			continue
		}
		if err := m.Client.RemoveObject(ctx, m.Bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove object %s: %w", object.Key, err)
		}
	}
	return nil
}

// ServerInfo probes the MinIO deployment for the health endpoint.
func (m *MinioClient) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	return m.Admin.ServerInfo(ctx)
}

func objectExt(file *asset.File) string {
	if ext := strings.ToLower(path.Ext(file.Filename)); ext != "" {
		return ext
	}
	switch strings.ToLower(strings.TrimSpace(strings.Split(file.ContentType, ";")[0])) {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

func stripObjectExt(key string) string {
	if dot := strings.LastIndex(key, "."); dot > strings.LastIndex(key, "/") {
		return key[:dot]
	}
	return key
}
