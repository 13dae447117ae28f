// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks card and account requests before any store or
// blob access happens. Missing required fields and malformed email or phone
// values are rejected here, so an invalid request never costs a network call.
//
// The required fields of every handler live in one table (see
// [RequiredFields]) instead of being spread over the handlers.
package validators

import "context"

// Validator checks a decoded request record. When fields are given, only
// their presence is checked; value shapes are always checked.
type Validator interface {
	Validate(ctx context.Context, record any, fields ...string) error
}
