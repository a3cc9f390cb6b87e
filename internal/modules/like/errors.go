package like

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrTargetNotFound = errors.New("like target not found")
)
