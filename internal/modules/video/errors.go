package video

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("video not found")
)
