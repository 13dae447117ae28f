package media

import "errors"

var (
	ErrInvalidImage = errors.New("invalid image data")
	ErrUploadFailed = errors.New("error uploading image")
)
