// Package storage uploads service images to S3-compatible object storage.
package storage

import (
	"context"
	"io"
	"net/url"
	"strings"

	"andicot_proforma/internal/config"
	"andicot_proforma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of *s3.Client the store calls.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3BlobStore struct {
	client        PutObjectAPI
	bucket        string
	publicBaseURL string
}

var _ interfaces.IBlobStore = (*S3BlobStore)(nil)

// NewS3Client uses path-style addressing when a custom endpoint (MinIO,
// LocalStack) is configured.
func NewS3Client(cfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

// NewS3BlobStore returns public URLs under PublicBaseURL, or the virtual-host
// S3 URL of the bucket when none is configured.
func NewS3BlobStore(client PutObjectAPI, c config.StorageConfig, region string) *S3BlobStore {
	base := strings.TrimRight(c.PublicBaseURL, "/")
	if base == "" {
		base = "https://" + c.Bucket + ".s3." + region + ".amazonaws.com"
	}
	return &S3BlobStore{client: client, bucket: c.Bucket, publicBaseURL: base}
}

func (s *S3BlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=300"),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *S3BlobStore) publicURL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.publicBaseURL + "/" + strings.Join(parts, "/")
}
