package country

import "errors"

var (
	ErrInvalidConfig  = errors.New("country: invalid configuration")
	ErrMissingDefault = errors.New("country: missing default entry")
	ErrInvalidOrder   = errors.New("country: invalid field order")
)
