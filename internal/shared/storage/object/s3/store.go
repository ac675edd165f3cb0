package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"portfolio-backend/internal/shared/storage/object"
)

// Store implements object.Store using Amazon S3.
type Store struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

// New creates an S3-backed object store.
func New(ctx context.Context, region, bucket, prefix string) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: strings.Trim(strings.TrimSpace(prefix), "/"),
		region: region,
	}, nil
}

// UploadFile uploads the reader contents to S3 at the given storage key.
func (s *Store) UploadFile(ctx context.Context, key string, contentType string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	objectKey := s.applyPrefix(key)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return nil
}

// UploadJSON marshals v and uploads it as application/json.
func (s *Store) UploadJSON(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return s.UploadFile(ctx, key, "application/json", bytes.NewReader(data))
}

// PublicURL returns the virtual-hosted URL for key.
func (s *Store) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, s.applyPrefix(key))
}

// Delete removes the object at key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	objectKey := s.applyPrefix(key)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("s3 delete object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return nil
}

// Name identifies the backend.
func (s *Store) Name() string { return "s3" }

// IsAbsoluteURL reports whether public URLs are fully qualified.
func (s *Store) IsAbsoluteURL() bool { return true }

func (s *Store) applyPrefix(key string) string {
	cleanKey := strings.TrimLeft(key, "/")
	if s.prefix == "" {
		return cleanKey
	}
	return s.prefix + "/" + cleanKey
}

var _ object.Store = (*Store)(nil)
