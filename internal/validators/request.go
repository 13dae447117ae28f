// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-business-card/models"
)

// Operation names one of the handlers. It selects the set of required fields.
type Operation string

const (
	OpCreateCard Operation = "create-card"
	OpUpdateCard Operation = "update-card"
	OpGetCard    Operation = "get-card"
	OpDeleteCard Operation = "delete-card"
	OpCreateUser Operation = "create-user"
	OpLogin      Operation = "login"
)

var requiredFields = map[Operation][]string{
	OpCreateCard: {models.FieldName, models.FieldEmail, models.FieldWhatsApp, models.FieldCardID},
	OpUpdateCard: {models.FieldCardID},
	OpGetCard:    {models.FieldCardID},
	OpDeleteCard: {models.FieldCardID},
	OpCreateUser: {models.FieldName, models.FieldEmail, models.FieldPassword, models.FieldCardID},
	OpLogin:      {models.FieldEmail, models.FieldPassword},
}

// RequiredFields returns the fields that must be present for op.
// The returned slice is a copy.
func RequiredFields(op Operation) []string {
	fields := requiredFields[op]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

// RequestValidator checks decoded request records before any store or blob
// access. It understands models.Card, models.CardUpdate, models.User and
// models.LoginRequest, by value or by pointer.
//
// When fields are given, presence is checked only for them. Shape checks
// (email, phone) run for every supplied value regardless.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Card:
		return v.validateCard(ctx, value, fields...)
	case *models.Card:
		return v.validateCard(ctx, *value, fields...)

	case models.CardUpdate:
		return v.validateCardUpdate(ctx, value, fields...)
	case *models.CardUpdate:
		return v.validateCardUpdate(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCard(ctx context.Context, card models.Card, fields ...string) error {
	if len(fields) == 0 {
		fields = RequiredFields(OpCreateCard)
	}

	for _, f := range fields {
		var value string
		switch f {
		case models.FieldCardID:
			value = card.CardID
		case models.FieldName:
			value = card.Name
		case models.FieldEmail:
			value = card.Email
		case models.FieldWhatsApp:
			value = card.WhatsApp
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if isBlank(value) {
			return missing(f)
		}
	}

	if card.Email != "" && !emailPattern.MatchString(card.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// validateCardUpdate requires card_id and at least one other field. A
// supplied name, email or whatsapp must not be blank, since the card would
// lose a required value.
func (v *RequestValidator) validateCardUpdate(ctx context.Context, update models.CardUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = RequiredFields(OpUpdateCard)
	}

	for _, f := range fields {
		switch f {
		case models.FieldCardID:
			if isBlank(update.CardID) {
				return missing(f)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	for _, fv := range update.Fields() {
		switch fv.Name {
		case models.FieldName, models.FieldWhatsApp:
			if isBlank(fv.Value) {
				return missing(fv.Name)
			}
		case models.FieldEmail:
			if isBlank(fv.Value) {
				return missing(fv.Name)
			}
			if !emailPattern.MatchString(fv.Value) {
				return ErrInvalidEmail
			}
		}
	}

	return nil
}

func (v *RequestValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = RequiredFields(OpCreateUser)
	}

	for _, f := range fields {
		var value string
		switch f {
		case models.FieldName:
			value = user.Name
		case models.FieldEmail:
			value = user.Email
		case models.FieldPassword:
			value = user.Password
		case models.FieldCardID:
			value = user.CardID
		case models.FieldPhone:
			value = user.Phone
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if isBlank(value) {
			return missing(f)
		}
	}

	if user.Email != "" && !emailPattern.MatchString(user.Email) {
		return ErrInvalidEmail
	}
	if user.Phone != "" && !phonePattern.MatchString(user.Phone) {
		return ErrInvalidPhone
	}

	return nil
}

func (v *RequestValidator) validateLogin(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = RequiredFields(OpLogin)
	}

	for _, f := range fields {
		switch f {
		case models.FieldEmail:
			if isBlank(req.Email) {
				return missing(f)
			}
		case models.FieldPassword:
			if req.Password == "" {
				return missing(f)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// DecodeBody parses a raw JSON object into dst. Anything that is not a
// single JSON object of the expected shape yields ErrInvalidRequestBody.
func DecodeBody(body string, dst any) error {
	trimmed := bytes.TrimSpace([]byte(body))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrInvalidRequestBody
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	if dec.More() {
		return ErrInvalidRequestBody
	}

	return nil
}

func missing(field string) error {
	return fmt.Errorf("%s %w", field, ErrMissingField)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
