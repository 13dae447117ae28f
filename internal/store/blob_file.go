package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-business-card/internal/logger"
)

// BlobReader gives read access to stored blobs. Only blob stores that are
// served by this process implement it.
type BlobReader interface {
	Open(ctx context.Context, key string) (io.ReadSeekCloser, error)
}

// FileBlobStorage keeps photos as files of one directory and publishes them
// under <baseURL>/media/<key>.
type FileBlobStorage struct {
	dir     string
	baseURL string
	logger  *logger.Logger
}

func NewFileBlobStorage(dir, baseURL string, logger *logger.Logger) (*FileBlobStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}
	logger.Debug().Str("dir", dir).Msg("creating file blob storage")

	return &FileBlobStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// path maps key to a file inside dir. The key is escaped so that it always
// names exactly one file in dir.
func (s *FileBlobStorage) path(key string) (string, error) {
	name := url.PathEscape(key)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobKey, key)
	}
	return filepath.Join(s.dir, name), nil
}

// Put writes through a temporary file and a rename, so readers never see a
// partially written photo.
func (s *FileBlobStorage) Put(ctx context.Context, key, contentType string, data []byte) error {
	log := logger.FromContext(ctx)

	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*FileBlobStorage.Put").Msg("error creating temp file")
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).Str("func", "*FileBlobStorage.Put").Str("key", key).Msg("error moving upload in place")
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}

	return nil
}

func (s *FileBlobStorage) URL(key string) string {
	return s.baseURL + "/media/" + url.PathEscape(key)
}

func (s *FileBlobStorage) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}
	return nil
}

func (s *FileBlobStorage) Open(ctx context.Context, key string) (io.ReadSeekCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}
	return f, nil
}
