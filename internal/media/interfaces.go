// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media turns the profile photo of a card request into the public
// URL kept in the card record.
//
// A photo arrives either as an embedded data URI, which is decoded and
// stored in the blob store under the card_id, or as an already published
// http(s) URL, which is kept verbatim.
package media

//go:generate mockgen -source=interfaces.go -destination=../mock/media_mock.go -package=mock

import "context"

// PhotoUploader decodes and stores profile photos.
//
// Prepare never touches the blob store, so a malformed photo is rejected
// before any write happens. Store performs the write that Prepare planned.
type PhotoUploader interface {
	// Prepare decodes photo and returns the planned upload. An empty photo
	// yields an empty Upload.
	Prepare(cardID, photo string) (Upload, error)

	// Store writes the decoded image of up. It is a no-op for uploads
	// without image data.
	Store(ctx context.Context, up Upload) error

	// Resolve is Prepare followed by Store. It returns the public URL.
	Resolve(ctx context.Context, cardID, photo string) (string, error)

	// Discard removes the photo stored for cardID.
	Discard(ctx context.Context, cardID string) error
}
