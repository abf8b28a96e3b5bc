package session

import "errors"

var (
	ErrNotFound     = errors.New("session: not found")
	ErrExpired      = errors.New("session: expired")
	ErrTypeMismatch = errors.New("session: type mismatch")
	ErrEncode       = errors.New("session: failed to encode")
	ErrDecode       = errors.New("session: failed to decode")
)
