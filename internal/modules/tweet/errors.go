package tweet

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("tweet not found")
)
