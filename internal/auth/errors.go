package auth

import "errors"

var (
	errMissingHeader = errors.New("authorization header is required")
	errBadHeader     = errors.New("invalid authorization header format")
)
