package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"todo-backend/internal/config"
)

// MinIOStorage is the object-store collaborator for todo attachments.
// Attachments live at <bucket>/attachments/<todoId>, so an item's public
// URL is derivable from its id alone.
type MinIOStorage struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
		expiry: time.Duration(cfg.URLExpiryMinutes) * time.Minute,
	}, nil
}

func objectKey(todoID string) string {
	return fmt.Sprintf("attachments/%s", todoID)
}

// PresignedUploadURL mints a time-limited URL a client can PUT the
// attachment object to.
func (s *MinIOStorage) PresignedUploadURL(ctx context.Context, todoID string) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, objectKey(todoID), s.expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload url: %w", err)
	}
	return u.String(), nil
}

// AttachmentURL is the deterministic public location of the item's
// attachment. It exists whether or not an upload has happened yet.
func (s *MinIOStorage) AttachmentURL(todoID string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey(todoID))
}
