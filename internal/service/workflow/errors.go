package workflow

import "errors"

var (
	ErrInvalidTransition     = errors.New("action not allowed from current order status")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrMissingRequiredFields = errors.New("missing required fields")
)
