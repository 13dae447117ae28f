// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Defaults are already applied.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.PasswordHasher {
	case HasherSHA256, HasherBcrypt:
	case HasherHMAC:
		if cfg.App.PasswordHashKey == "" {
			return fmt.Errorf("%w: hmac hasher needs a password hash key", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverDynamoDB:
		if cfg.Storage.DynamoDB.CardsTable == "" {
			return fmt.Errorf("%w: dynamodb driver needs a cards table", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	switch cfg.Storage.BlobDriver {
	case BlobDriverFile:
	case BlobDriverS3:
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 blob driver needs a bucket", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown blob driver %q", ErrInvalidStorageConfigs, cfg.Storage.BlobDriver)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}
