package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

// ObjectPutter is the part of the S3 client the store needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type AvatarStore struct {
	client        ObjectPutter
	bucket        string
	publicBaseURL string
}

func NewAvatarStore(client ObjectPutter, bucket, publicBaseURL string) *AvatarStore {
	return &AvatarStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// NewS3Client builds a client for AWS or any S3-compatible endpoint (MinIO, R2).
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
	}
	if cfg.S3AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

// Upload stores a processed avatar and returns its public URL. Each upload
// gets a fresh key so CDNs never serve a stale picture.
func (s *AvatarStore) Upload(ctx context.Context, professionalID string, data []byte) (string, error) {
	key := fmt.Sprintf("avatars/%s/%s.webp", professionalID, uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("put avatar: %w", err)
	}

	return s.URL(key), nil
}

func (s *AvatarStore) URL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
