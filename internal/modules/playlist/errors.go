package playlist

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("playlist not found")
	ErrVideoNotFound = errors.New("video not found")
)
