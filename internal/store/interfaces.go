// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the record stores for cards and accounts and the blob
// stores for profile photos.
//
// Every backend honours the same contract: creation is conditional on the
// key being absent, updates never create, and every unexpected backend
// failure is wrapped with [ErrStoreUnavailable] or [ErrBlobUnavailable].
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-business-card/models"
)

// CardRepository keeps card profiles keyed by card_id.
type CardRepository interface {
	// CreateCard stores card if its card_id is free, else ErrCardAlreadyExists.
	CreateCard(ctx context.Context, card models.Card) error

	// UpdateCard overwrites the supplied fields of an existing card.
	// A missing card yields ErrCardNotFound and nothing is created.
	UpdateCard(ctx context.Context, update models.CardUpdate) error

	// UpsertCard overwrites the supplied fields, creating the card with
	// empty remaining fields when it does not exist yet.
	UpsertCard(ctx context.Context, update models.CardUpdate) error

	// GetCard returns the card or ErrCardNotFound.
	GetCard(ctx context.Context, cardID string) (models.Card, error)

	// DeleteCard removes the card. Deleting a missing card is not an error.
	DeleteCard(ctx context.Context, cardID string) error
}

// UserRepository keeps accounts keyed by email.
type UserRepository interface {
	// CreateUser stores user unless another account already uses the same
	// email, phone or card_id, in which case ErrUserAlreadyExists is returned.
	// The three checks and the write happen atomically.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByEmail returns the account or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BlobStorage keeps binary objects and publishes them under a URL.
type BlobStorage interface {
	// Put writes data under key, replacing any previous object.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// URL returns the public URL of key. It does not check existence.
	URL(key string) string

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
