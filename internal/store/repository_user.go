package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/models"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// account creation and lookup against the "users" table.
//
// Uniqueness of email, card_id and phone is enforced by the table's primary
// key and UNIQUE constraints, so the three checks and the insert are a
// single atomic statement.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account.
//
// Error handling:
//   - unique or primary-key violation → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped with [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// create user in db
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.dialect.uniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("insert failed")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

// FindUserByEmail retrieves the account registered under email.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - any other driver-level error → wrapped with [ErrStoreUnavailable].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var (
		foundUser models.User
		phone     sql.NullString
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&foundUser.Email, &foundUser.Name, &foundUser.Password, &foundUser.CardID, &phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}
	foundUser.Phone = phone.String

	return foundUser, nil
}
