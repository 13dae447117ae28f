// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/models"
)

// cardRepository is the SQL implementation of [CardRepository]. The same
// code serves PostgreSQL and SQLite; the differences live in [dialect].
type cardRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCard inserts the card. The primary key on card_id makes the insert
// conditional: a duplicate fails with a unique violation and nothing is
// overwritten.
func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCardQuery(r.db.builder(), card)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.CreateCard").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.dialect.uniqueViolation(err) {
			return ErrCardAlreadyExists
		}
		log.Err(err).Str("func", "*cardRepository.CreateCard").Str("card_id", card.CardID).Msg("insert failed")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

func (r *cardRepository) UpdateCard(ctx context.Context, update models.CardUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCardQuery(r.db.builder(), update)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.UpdateCard").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.UpdateCard").Str("card_id", update.CardID).Msg("update failed")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	return nil
}

func (r *cardRepository) UpsertCard(ctx context.Context, update models.CardUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCardQuery(r.db.builder(), update)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.UpsertCard").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cardRepository.UpsertCard").Str("card_id", update.CardID).Msg("upsert failed")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

func (r *cardRepository) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCardQuery(r.db.builder(), cardID)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.GetCard").Msg("failed to build query")
		return models.Card{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var card models.Card
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(cardScanTargets(&card)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}
		log.Err(err).Str("func", "*cardRepository.GetCard").Str("card_id", cardID).Msg("select failed")
		return models.Card{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return card, nil
}

func (r *cardRepository) DeleteCard(ctx context.Context, cardID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCardQuery(r.db.builder(), cardID)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCard").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCard").Str("card_id", cardID).Msg("delete failed")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}
