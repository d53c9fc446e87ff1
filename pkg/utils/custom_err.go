package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrTripNotFound      = errors.New("trip not found")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrDatabaseError     = errors.New("database error")
	ErrGeneration        = errors.New("all backends failed")
	ErrInvalidAIResponse = errors.New("ai returned invalid data")
	ErrAdaptation        = errors.New("unrecognized trip data shape")
)
