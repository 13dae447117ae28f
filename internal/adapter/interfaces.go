// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the card API.
//
// Error envelopes returned by the API are mapped to the sentinel errors of
// this package, so callers can use [errors.Is] regardless of the status code
// a deployment answers with.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-business-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CardAPI talks to a deployed card service.
type CardAPI interface {
	CreateCard(ctx context.Context, card models.Card) error
	UpdateCard(ctx context.Context, update models.CardUpdate) error
	GetCard(ctx context.Context, cardID string) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) error

	Register(ctx context.Context, user models.User) error
	// Login returns the card id linked to the account.
	Login(ctx context.Context, req models.LoginRequest) (string, error)
}
