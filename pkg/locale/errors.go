package locale

import "errors"

var (
	ErrInvalidLocale  = errors.New("locale: invalid locale")
	ErrNotListable    = errors.New("locale: backend cannot list locales")
	ErrInvalidBackend = errors.New("locale: backend is required")
)
