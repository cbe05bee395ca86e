package freightrequest

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidFreightType    = errors.New("invalid freight type")
	ErrInvalidUrgency        = errors.New("invalid urgency")
	ErrInvalidWeight         = errors.New("invalid weight")

	ErrNotShipper = errors.New("caller is not a shipper")
	ErrForbidden  = errors.New("caller is not allowed to access this resource")

	ErrRequestNotFound      = errors.New("freight request not found")
	ErrRequestClosed        = errors.New("freight request is already in a terminal status")
	ErrRequestNotInProgress = errors.New("freight request is not in progress")
	ErrNoSelectedQuote      = errors.New("freight request has no selected quote")
)
