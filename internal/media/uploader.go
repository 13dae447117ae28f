package media

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/store"
)

// Upload is a planned photo write. Image is nil when the photo was already
// a URL and nothing has to be stored.
type Upload struct {
	Key   string
	URL   string
	Image *Image
}

// Uploader stores photos under the card_id, so re-uploading for the same
// card replaces the previous photo and the URL is known before the write.
type Uploader struct {
	blobs  store.BlobStorage
	logger *logger.Logger
}

func NewUploader(blobs store.BlobStorage, logger *logger.Logger) *Uploader {
	return &Uploader{blobs: blobs, logger: logger}
}

func (u *Uploader) Prepare(cardID, photo string) (Upload, error) {
	if photo == "" {
		return Upload{}, nil
	}
	if IsURL(photo) {
		return Upload{URL: photo}, nil
	}

	img, err := ParseDataURI(photo)
	if err != nil {
		return Upload{}, err
	}

	return Upload{Key: cardID, URL: u.blobs.URL(cardID), Image: &img}, nil
}

func (u *Uploader) Store(ctx context.Context, up Upload) error {
	if up.Image == nil {
		return nil
	}

	log := logger.FromContext(ctx)
	if err := u.blobs.Put(ctx, up.Key, up.Image.ContentType, up.Image.Data); err != nil {
		log.Err(err).Str("func", "*Uploader.Store").Str("key", up.Key).Msg("photo upload failed")
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	log.Debug().
		Str("func", "*Uploader.Store").
		Str("key", up.Key).
		Str("content_type", up.Image.ContentType).
		Int("size", len(up.Image.Data)).
		Msg("photo stored")
	return nil
}

func (u *Uploader) Resolve(ctx context.Context, cardID, photo string) (string, error) {
	up, err := u.Prepare(cardID, photo)
	if err != nil {
		return "", err
	}
	if err = u.Store(ctx, up); err != nil {
		return "", err
	}
	return up.URL, nil
}

func (u *Uploader) Discard(ctx context.Context, cardID string) error {
	if err := u.blobs.Delete(ctx, cardID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Uploader.Discard").Str("key", cardID).Msg("photo delete failed")
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	return nil
}
