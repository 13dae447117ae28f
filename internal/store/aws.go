package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Package-level seams so tests can observe the client construction without
// talking to AWS.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newDynamoDBClientFromConfig = func(cfg aws.Config, optFns ...func(*dynamodb.Options)) DynamoDBAPI {
		return dynamodb.NewFromConfig(cfg, optFns...)
	}

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) S3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// loadAWSConfig resolves region and credentials. Static credentials are
// used when both keys are configured, the default chain otherwise.
func loadAWSConfig(ctx context.Context, cfg config.Storage) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("error loading aws config: %w", err)
	}
	return awsCfg, nil
}

// NewDynamoDBClient builds a DynamoDB client, honouring a custom endpoint
// such as DynamoDB Local.
func NewDynamoDBClient(ctx context.Context, cfg config.Storage) (DynamoDBAPI, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return newDynamoDBClientFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
		}
	}), nil
}

// NewS3Client builds an S3 client. A custom endpoint (MinIO) switches to
// path-style addressing.
func NewS3Client(ctx context.Context, cfg config.Storage) (S3API, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
