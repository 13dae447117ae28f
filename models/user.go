// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User field names that are not shared with [Card].
const (
	FieldPassword = "password"
	FieldPhone    = "phone"
)

// User is a login-capable account linked to exactly one card.
//
// Email identifies the account. Password holds the plaintext only while the
// request is validated; it is replaced by its digest before the user reaches
// the store and is never returned to callers.
type User struct {
	Name     string `json:"name" dynamodbav:"name"`
	Email    string `json:"email" dynamodbav:"email"`
	Password string `json:"password" dynamodbav:"password"`
	CardID   string `json:"card_id" dynamodbav:"card_id"`

	// Phone is optional. When present it must be unique across accounts.
	Phone string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
}

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	CardID  string `json:"card_id"`
}
