package orders

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrBackendRejected marks a 4xx verdict from the backend, e.g. an
	// illegal transition attempted from a stale status. Never retried.
	ErrBackendRejected = errors.New("backend rejected request")
)
