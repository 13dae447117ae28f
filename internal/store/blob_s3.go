package store

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the part of the S3 client used by [S3BlobStorage].
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3BlobStorage keeps photos as public-read objects of a single bucket.
type S3BlobStorage struct {
	client   S3API
	bucket   string
	endpoint string
	logger   *logger.Logger
}

// NewS3BlobStorage returns an S3 blob store. endpoint is empty for AWS and
// set for S3-compatible services; it only changes the published URL.
func NewS3BlobStorage(client S3API, bucket, endpoint string, logger *logger.Logger) *S3BlobStorage {
	logger.Debug().Str("bucket", bucket).Msg("creating s3 blob storage")
	return &S3BlobStorage{
		client:   client,
		bucket:   bucket,
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   logger,
	}
}

func (s *S3BlobStorage) Put(ctx context.Context, key, contentType string, data []byte) error {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		log.Err(err).Str("func", "*S3BlobStorage.Put").Str("key", key).Msg("put object failed")
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}

	return nil
}

// URL returns https://<bucket>.s3.amazonaws.com/<key>, or
// <endpoint>/<bucket>/<key> for a custom endpoint.
func (s *S3BlobStorage) URL(key string) string {
	escaped := url.PathEscape(key)
	if s.endpoint != "" {
		return s.endpoint + "/" + s.bucket + "/" + escaped
	}
	return "https://" + s.bucket + ".s3.amazonaws.com/" + escaped
}

func (s *S3BlobStorage) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("func", "*S3BlobStorage.Delete").Str("key", key).Msg("delete object failed")
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}

	return nil
}
