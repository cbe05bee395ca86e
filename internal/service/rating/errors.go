package rating

import "errors"

var (
	ErrInvalidRatingValue = errors.New("rating must be an integer between 1 and 5")

	ErrForbidden = errors.New("caller is not allowed to access this resource")

	ErrRequestNotFound     = errors.New("freight request not found")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrRequestNotCompleted = errors.New("only completed freight requests can be rated")
	ErrNoSelectedQuote     = errors.New("freight request has no selected provider")
	ErrAlreadyRated        = errors.New("freight request already rated by this shipper")
)
