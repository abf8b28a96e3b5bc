package i18n

import "errors"

var (
	ErrUnknownMethod = errors.New("i18n: unknown resolution method")
	ErrNoLocalizer   = errors.New("i18n: no localizer in context")
)
