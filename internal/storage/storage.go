package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	cfg "github.com/unionlaw/lawfirm/internal/config"
)

// Storage defines the interface for attachment storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, file io.Reader, size int64, contentType string) error

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// URL returns a URL for accessing the file
	URL(path string) string
}

// LinkExpiry is how long attachment links stay valid on every driver.
const LinkExpiry = time.Hour

const (
	DriverLocal = "local"
	DriverS3    = "s3"
	DriverMinIO = "minio"
)

// New builds the storage backend selected by STORAGE_DRIVER.
func New(c *cfg.Config) (Storage, error) {
	switch c.StorageDriver {
	case DriverLocal, "":
		slog.Info("initializing local storage", "dir", c.UploadDir)
		return NewLocalStorage(c.UploadDir, c.APIURL+"/uploads", WithSignedLinks([]byte(c.JWTSecret), LinkExpiry))
	case DriverS3:
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,

			PresignExpiry: LinkExpiry,
		})
	case DriverMinIO:
		slog.Info("initializing MinIO storage", "endpoint", c.MinIOEndpoint, "bucket", c.MinIOBucket)
		return NewMinIOStorage(MinIOConfig{
			Endpoint:  c.MinIOEndpoint,
			Bucket:    c.MinIOBucket,
			AccessKey: c.MinIOAccessKey,
			SecretKey: c.MinIOSecretKey,
			UseSSL:    c.MinIOUseSSL,
			Expiry:    LinkExpiry,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
