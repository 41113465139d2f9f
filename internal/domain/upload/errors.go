package upload

import "errors"

var (
	ErrNoFiles       = errors.New("no image files provided")
	ErrTooManyFiles  = errors.New("too many image files")
	ErrInvalidUpload = errors.New("invalid multipart upload")
)
