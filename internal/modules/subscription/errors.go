package subscription

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrChannelNotFound = errors.New("channel not found")
)
