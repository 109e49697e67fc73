package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// MinIOArchive stores uploaded meeting audio in a MinIO/S3 bucket
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchive creates a MinIO client and ensures the bucket exists
func NewMinIOArchive(ctx context.Context, cfg *config.StorageConfig) (*MinIOArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &MinIOArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}
	return archive, nil
}

// ensureBucket creates the bucket if it doesn't exist. Objects stay private.
func (m *MinIOArchive) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Put uploads the recording and returns its object key
func (m *MinIOArchive) Put(ctx context.Context, meetingID uuid.UUID, filename, contentType string, data []byte) (string, error) {
	key := ObjectKey(meetingID, filename)
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}
	return key, nil
}

// Delete removes an archived recording
func (m *MinIOArchive) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove audio: %w", err)
	}
	return nil
}

// ObjectKey builds meetings/<meeting id>/<random id><ext>
func ObjectKey(meetingID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	if ext == "." || len(ext) > 10 {
		ext = ""
	}
	return fmt.Sprintf("meetings/%s/%s%s", meetingID, uuid.New(), ext)
}
