// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/crypto"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/store"
	"github.com/MKhiriev/go-business-card/models"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with the configured PasswordHasher and uses a
// UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives the stored digest. The same hasher must be used at
	// registration and login time.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// The plaintext password is replaced by its digest before the repository is
// called. Returns:
//   - ErrConflict if the email, phone or card_id is already used.
//   - ErrStoreUnavailable if the repository call fails otherwise.
func (a *authService) RegisterUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = digest

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("func", "*authService.RegisterUser").Str("card_id", user.CardID).Msg("account already exists")
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Login authenticates an existing account.
//
// An unknown email and a wrong password are indistinguishable to the
// caller: both yield ErrUnauthorized.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "*authService.Login").Msg("unknown email")
			return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if !a.hasher.Verify(foundUser.Password, req.Password) {
		log.Info().Str("func", "*authService.Login").Str("card_id", foundUser.CardID).Msg("wrong password")
		return models.User{}, ErrUnauthorized
	}

	foundUser.Password = ""
	return foundUser, nil
}
