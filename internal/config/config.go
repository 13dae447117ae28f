// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported values of [Storage.Driver].
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
)

// Supported values of [Storage.BlobDriver].
const (
	BlobDriverFile = "file"
	BlobDriverS3   = "s3"
)

// Supported values of [App.PasswordHasher].
const (
	HasherSHA256 = "sha256"
	HasherHMAC   = "hmac"
	HasherBcrypt = "bcrypt"
)

// StructuredConfig is the top-level configuration container for the
// business-card service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: password hashing, update
	// semantics, the public base URL and the selected gateway function.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the record store and the blob store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Legacy holds the unprefixed variables the service was historically
	// deployed with (DYNAMODB_TABLE, AWS_REGION, S3_BUCKET). They are used
	// only when the prefixed equivalent is empty.
	Legacy Legacy

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHasher selects the password digest: "sha256" (default,
	// unsalted, compatible with existing accounts), "hmac" or "bcrypt".
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`

	// PasswordHashKey is the secret key used by the "hmac" hasher.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// StrictUpdate makes update-card answer 404 for a card that does not
	// exist. When false update-card creates a missing card from the supplied
	// fields.
	// Env: APP_STRICT_UPDATE
	StrictUpdate bool `env:"STRICT_UPDATE"`

	// PublicBaseURL is the externally visible base URL of the HTTP server.
	// It prefixes the URLs of photos kept by the file blob store.
	// Env: APP_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Function pins a Lambda deployment to one handler (e.g. "create-card").
	// Empty means the request is routed by method and path.
	// Env: APP_FUNCTION
	Function string `env:"FUNCTION"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the /healthz endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request, including the store calls.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Driver selects the record store: memory, postgres, sqlite or dynamodb.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// BlobDriver selects the photo store: file or s3.
	// Env: STORAGE_BLOB_DRIVER
	BlobDriver string `env:"BLOB_DRIVER"`

	// Region is the AWS region used by the dynamodb and s3 drivers.
	// Env: STORAGE_REGION (falls back to AWS_REGION)
	Region string `env:"REGION"`

	DB       DB       `envPrefix:"DB_"`
	DynamoDB DynamoDB `envPrefix:"DYNAMODB_"`
	Files    Files    `envPrefix:"FILES_"`
	S3       S3       `envPrefix:"S3_"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// DSN is the PostgreSQL connection string or the SQLite file name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// DynamoDB holds the table names of the dynamodb driver.
type DynamoDB struct {
	// CardsTable stores cards keyed by card_id.
	// Env: STORAGE_DYNAMODB_CARDS_TABLE (falls back to DYNAMODB_TABLE)
	CardsTable string `env:"CARDS_TABLE"`

	// UsersTable stores accounts keyed by email.
	// Env: STORAGE_DYNAMODB_USERS_TABLE
	UsersTable string `env:"USERS_TABLE"`

	// Endpoint overrides the service endpoint (DynamoDB Local).
	// Env: STORAGE_DYNAMODB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
}

// Files holds settings of the file-system blob store.
type Files struct {
	// BlobDir is the directory where uploaded photos are written.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`
}

// S3 holds settings of the S3 blob store.
type S3 struct {
	// Bucket receives the uploaded photos.
	// Env: STORAGE_S3_BUCKET (falls back to S3_BUCKET)
	Bucket string `env:"BUCKET"`

	// Endpoint overrides the S3 endpoint (MinIO and friends).
	// Env: STORAGE_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey are static credentials. When both are empty
	// the default AWS credential chain is used.
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Adapter holds configuration of the API client.
type Adapter struct {
	// HTTPAddress is the base address of the card API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Legacy holds unprefixed environment variables.
type Legacy struct {
	DynamoDBTable string `env:"DYNAMODB_TABLE"`
	AWSRegion     string `env:"AWS_REGION"`
	S3Bucket      string `env:"S3_BUCKET"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetEnvConfig is like [GetStructuredConfig] but ignores command-line flags.
// It is used by binaries that own their command line (the Lambda runtime
// and the API client).
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
