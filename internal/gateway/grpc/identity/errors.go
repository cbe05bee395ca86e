package identity

import "errors"

var (
	ErrTokenInvalid = errors.New("token is invalid or expired")
)
