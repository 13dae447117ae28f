// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
)

const defaultContentType = "application/octet-stream"

// Image is a decoded embedded image.
type Image struct {
	ContentType string
	Data        []byte
}

// ParseDataURI decodes "data:[<mediatype>][;base64],<payload>".
//
// Unpadded base64 is accepted as well. Anything else, including an empty
// payload, yields ErrInvalidImage.
func ParseDataURI(s string) (Image, error) {
	prefix, payload, found := strings.Cut(s, ",")
	if !found {
		return Image{}, fmt.Errorf("%w: missing data separator", ErrInvalidImage)
	}
	if !strings.HasPrefix(strings.ToLower(prefix), "data:") {
		return Image{}, fmt.Errorf("%w: not a data URI", ErrInvalidImage)
	}

	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	return Image{ContentType: contentType(prefix[len("data:"):]), Data: data}, nil
}

// contentType extracts the media type from the data URI header, dropping
// the ";base64" marker and any invalid value.
func contentType(header string) string {
	mediaType, _, _ := strings.Cut(header, ";")
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		return defaultContentType
	}

	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return defaultContentType
	}
	return parsed
}

// IsURL reports whether photo is an already published http(s) URL.
func IsURL(photo string) bool {
	lower := strings.ToLower(photo)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
