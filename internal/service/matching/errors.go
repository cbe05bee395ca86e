package matching

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrNotProvider           = errors.New("caller is not a provider")
	ErrProviderNotFound      = errors.New("provider not found")
)
