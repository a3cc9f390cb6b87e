package comment

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("comment not found")
	ErrVideoNotFound = errors.New("video not found")
)
