package quote

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidDeliveryDate   = errors.New("invalid estimated delivery date")
	ErrInvalidInsurance      = errors.New("invalid insurance coverage")

	ErrNotProvider = errors.New("caller is not a provider")
	ErrForbidden   = errors.New("caller is not allowed to access this resource")

	ErrQuoteNotFound   = errors.New("quote not found")
	ErrRequestNotFound = errors.New("freight request not found")

	ErrRequestClosed         = errors.New("freight request is no longer accepting this operation")
	ErrQuoteExpired          = errors.New("quote validity window has passed")
	ErrQuoteAlreadySubmitted = errors.New("provider already has a pending quote on this request")
)
