package prod

import "errors"

// Domain-specific errors for the prod package.
var (
	ErrUnknownMode    = errors.New("unknown form mode")
	ErrUnknownField   = errors.New("unknown form field")
	ErrUnknownStatus  = errors.New("unknown status toggle")
	ErrFieldLocked    = errors.New("field cannot be edited in this mode")
	ErrMissingRecord  = errors.New("edit form requires an existing record")
	ErrSubmitInFlight = errors.New("a submit is already in progress")
	ErrFormNotFound   = errors.New("form not found")
	ErrDeptNotFound   = errors.New("department not found in cache")
)
