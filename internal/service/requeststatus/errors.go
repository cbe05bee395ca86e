package requeststatus

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined freight request status")
	ErrRequestNotFound = errors.New("freight request not found")
)
