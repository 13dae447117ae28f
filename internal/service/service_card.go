// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/media"
	"github.com/MKhiriev/go-business-card/internal/store"
	"github.com/MKhiriev/go-business-card/models"
)

// cardService is the concrete implementation of CardService. Requests reach
// it already validated; see [CardValidationService].
type cardService struct {
	cards    store.CardRepository
	uploader media.PhotoUploader

	// strictUpdate turns an update of a missing card into ErrNotFound
	// instead of a silent success.
	strictUpdate bool

	logger *logger.Logger
}

func NewCardService(cards store.CardRepository, uploader media.PhotoUploader, cfg config.App, logger *logger.Logger) CardService {
	return &cardService{
		cards:        cards,
		uploader:     uploader,
		strictUpdate: cfg.StrictUpdate,
		logger:       logger,
	}
}

// CreateCard decodes the photo, creates the card with the photo URL already
// set and only then uploads the photo. A conflicting create therefore never
// replaces the photo of the existing card. If the upload fails the new card
// is removed again.
func (s *cardService) CreateCard(ctx context.Context, card models.Card) error {
	log := logger.FromContext(ctx).With().Str("card_id", card.CardID).Logger()

	upload, err := s.uploader.Prepare(card.CardID, card.ProfilePhoto)
	if err != nil {
		return invalidRequest(err)
	}
	card.ProfilePhoto = upload.URL

	if err = s.cards.CreateCard(ctx, card); err != nil {
		if errors.Is(err, store.ErrCardAlreadyExists) {
			log.Info().Str("func", "*cardService.CreateCard").Msg("card_id already taken")
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = s.uploader.Store(ctx, upload); err != nil {
		log.Err(err).Str("func", "*cardService.CreateCard").Msg("photo upload failed, removing card")
		if delErr := s.cards.DeleteCard(ctx, card.CardID); delErr != nil {
			log.Err(delErr).Str("func", "*cardService.CreateCard").Msg("error removing card after failed upload")
		}
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// UpdateCard uploads a new photo first, overwriting the previous one, and
// stores its URL together with the other supplied fields. By default a
// missing card is created from the supplied fields. In strict mode a missing
// card is reported as not found and a photo uploaded for it is removed again.
func (s *cardService) UpdateCard(ctx context.Context, update models.CardUpdate) error {
	log := logger.FromContext(ctx).With().Str("card_id", update.CardID).Logger()

	uploaded := false
	if update.ProfilePhoto != nil {
		uploaded = *update.ProfilePhoto != "" && !media.IsURL(*update.ProfilePhoto)

		url, err := s.uploader.Resolve(ctx, update.CardID, *update.ProfilePhoto)
		if err != nil {
			if errors.Is(err, media.ErrInvalidImage) {
				return invalidRequest(err)
			}
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		update.ProfilePhoto = &url
	}

	if !s.strictUpdate {
		if err := s.cards.UpsertCard(ctx, update); err != nil {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil
	}

	err := s.cards.UpdateCard(ctx, update)
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrCardNotFound) {
		if uploaded {
			if discardErr := s.uploader.Discard(ctx, update.CardID); discardErr != nil {
				log.Err(discardErr).Str("func", "*cardService.UpdateCard").Msg("error removing photo of a missing card")
			}
		}
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func (s *cardService) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	if strings.TrimSpace(cardID) == "" {
		return models.Card{}, invalidRequest(ErrCardIDMissing)
	}

	card, err := s.cards.GetCard(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return models.Card{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return models.Card{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return card, nil
}

// DeleteCard removes the card. The stored photo is left in place, as
// accounts may still reference the card_id.
func (s *cardService) DeleteCard(ctx context.Context, cardID string) error {
	if strings.TrimSpace(cardID) == "" {
		return invalidRequest(ErrCardIDMissing)
	}

	if err := s.cards.DeleteCard(ctx, cardID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*cardService.DeleteCard").
			Str("card_id", cardID).
			Msg("error deleting card")
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	return nil
}
