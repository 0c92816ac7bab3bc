package auth

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthorized    = errors.New("could not validate credentials")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	ErrUnsupportedAlg  = errors.New("unsupported signing algorithm")
	ErrEmptySigningKey = errors.New("signing key is empty")
)
