package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// connectRetries bounds the ping attempts made while the database is still
// starting up.
const connectRetries = 4

// ErrorClassificator decides whether a failed database call is worth
// repeating. It is consulted only while connecting; request-time failures
// are never retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// dialect captures what differs between the SQL backends.
type dialect struct {
	// migrations is the goose dialect name.
	migrations string
	// placeholder is the bind-variable style of the driver.
	placeholder sq.PlaceholderFormat
	// uniqueViolation reports whether err is a primary-key or unique
	// constraint failure.
	uniqueViolation func(err error) bool
}

// DB is a database/sql connection bound to its dialect.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.migrations)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

// ping checks the connection, repeating the attempt with exponential
// back-off while the classifier considers the failure transient.
func (db *DB) ping(ctx context.Context) error {
	backoff := retry.WithMaxRetries(connectRetries, retry.NewExponential(250*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.ping").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
