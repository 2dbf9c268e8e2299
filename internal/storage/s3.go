package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dexianlabs/pastelaria-api/internal/config"
)

// PhotoStore persists uploaded product photos; the key it receives is
// what ends up in products.photo.
type PhotoStore interface {
	Save(ctx context.Context, key string, body []byte, contentType string) error
}

type S3PhotoStore struct {
	client *s3.Client
	bucket string
}

func NewS3PhotoStore(cfg *config.Config) *S3PhotoStore {
	opts := s3.Options{
		Region:      cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}

	// Custom endpoint for minio/localstack setups.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3PhotoStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

func (s *S3PhotoStore) Save(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

var _ PhotoStore = (*S3PhotoStore)(nil)
