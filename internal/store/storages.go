package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/logger"
)

// Storages bundles the backends selected by configuration.
type Storages struct {
	CardRepository CardRepository
	UserRepository UserRepository
	BlobStorage    BlobStorage

	// BlobReader is set when photos are served by this process.
	BlobReader BlobReader

	closers []func() error
}

// NewStorages connects the record store chosen by cfg.Storage.Driver and the
// blob store chosen by cfg.Storage.BlobDriver. SQL schemas are migrated on
// connect.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	if err := s.connectRecords(ctx, cfg.Storage, log); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.connectBlobs(ctx, cfg, log); err != nil {
		s.Close()
		return nil, err
	}

	log.Info().
		Str("driver", cfg.Storage.Driver).
		Str("blob_driver", cfg.Storage.BlobDriver).
		Msg("storages are ready")
	return s, nil
}

func (s *Storages) connectRecords(ctx context.Context, cfg config.Storage, log *logger.Logger) error {
	switch cfg.Driver {
	case config.DriverMemory, "":
		s.CardRepository = NewMemoryCardRepository()
		s.UserRepository = NewMemoryUserRepository()

	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return fmt.Errorf("error connecting %s: %w", cfg.Driver, err)
		}
		s.closers = append(s.closers, db.Close)

		if err = db.Migrate(); err != nil {
			return err
		}
		s.CardRepository = NewCardRepository(db, log)
		s.UserRepository = NewUserRepository(db, log)

	case config.DriverDynamoDB:
		client, err := NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return err
		}
		s.CardRepository = NewDynamoCardRepository(client, cfg.DynamoDB.CardsTable, log)
		s.UserRepository = NewDynamoUserRepository(client, cfg.DynamoDB.UsersTable, log)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	return nil
}

func (s *Storages) connectBlobs(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	switch cfg.Storage.BlobDriver {
	case config.BlobDriverFile, "":
		files, err := NewFileBlobStorage(cfg.Storage.Files.BlobDir, cfg.App.PublicBaseURL, log)
		if err != nil {
			return err
		}
		s.BlobStorage = files
		s.BlobReader = files

	case config.BlobDriverS3:
		client, err := NewS3Client(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		s.BlobStorage = NewS3BlobStorage(client, cfg.Storage.S3.Bucket, cfg.Storage.S3.Endpoint, log)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.BlobDriver)
	}

	return nil
}

// Close releases database connections.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	s.closers = nil
	return errors.Join(errs...)
}
