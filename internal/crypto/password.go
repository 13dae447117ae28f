// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnknownHasher = errors.New("unknown password hasher")
	ErrEmptyHashKey  = errors.New("password hash key is empty")
)

// NewPasswordHasher returns the hasher selected by cfg.PasswordHasher.
// An empty name selects the SHA-256 hasher.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	switch cfg.PasswordHasher {
	case "", config.HasherSHA256:
		return NewSHA256Hasher(), nil
	case config.HasherHMAC:
		return NewHMACHasher(cfg.PasswordHashKey)
	case config.HasherBcrypt:
		return NewBcryptHasher(bcrypt.DefaultCost), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.PasswordHasher)
	}
}

// SHA256Hasher stores hex(sha256(password)). It is unsalted and kept for
// compatibility with accounts created by earlier deployments.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

func (h *SHA256Hasher) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(digest, plain string) bool {
	expected, _ := h.Hash(plain)
	return equalDigests(digest, expected)
}

// HMACHasher stores hex(HMAC-SHA256(key, password)). Digests are useless
// without the server-side key.
type HMACHasher struct {
	key []byte
}

func NewHMACHasher(key string) (*HMACHasher, error) {
	if key == "" {
		return nil, ErrEmptyHashKey
	}
	return &HMACHasher{key: []byte(key)}, nil
}

func (h *HMACHasher) Hash(plain string) (string, error) {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(plain))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

func (h *HMACHasher) Verify(digest, plain string) bool {
	expected, _ := h.Hash(plain)
	return equalDigests(digest, expected)
}

// BcryptHasher stores salted bcrypt digests.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

func equalDigests(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
