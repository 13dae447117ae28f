// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-business-card/models"
)

// CardService creates, edits, reads and removes business cards.
type CardService interface {
	CreateCard(ctx context.Context, card models.Card) error
	UpdateCard(ctx context.Context, update models.CardUpdate) error
	GetCard(ctx context.Context, cardID string) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
}

// AuthService registers accounts and checks their credentials.
type AuthService interface {
	// RegisterUser stores user with its password replaced by a digest.
	RegisterUser(ctx context.Context, user models.User) error

	// Login returns the account matching the credentials. The returned user
	// never carries the password digest.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// AppInfoService reports build information of the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CardServiceWrapper defines middleware composition for CardService.
// Implementations wrap an existing CardService to add behavior such as
// validation.
type CardServiceWrapper interface {
	Wrap(CardService) CardService
}

// AuthServiceWrapper is the AuthService counterpart of [CardServiceWrapper].
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
