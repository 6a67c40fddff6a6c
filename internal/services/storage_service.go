package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"film-recommendations/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ObjectStore is the read side of the object storage the catalog importer uses.
type ObjectStore interface {
	GetObject(ctx context.Context, name string) (io.ReadCloser, error)
	Location(name string) string
}

type MinIOService struct {
	client *minio.Client
	bucket string
	logger *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client: minioClient,
		bucket: cfg.BucketName,
		logger: logger,
	}

	if err := service.checkBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Catalog bucket is not reachable, imports will fail until it is")
	}

	return service, nil
}

func (s *MinIOService) checkBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// GetObject opens an object for reading. minio-go defers the request until the
// first read, so Stat is used to surface missing objects here.
func (s *MinIOService) GetObject(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("object", name).Error("Failed to open object")
		return nil, fmt.Errorf("failed to open object %s: %w", name, err)
	}

	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		s.logger.WithError(err).WithField("object", name).Error("Failed to stat object")
		return nil, fmt.Errorf("failed to stat object %s: %w", name, err)
	}

	return obj, nil
}

func (s *MinIOService) Location(name string) string {
	return s.bucket + "/" + name
}
