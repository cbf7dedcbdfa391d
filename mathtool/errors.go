package mathtool

import "errors"

// Sentinel errors forming the tool set's error taxonomy. Every domain
// violation wraps exactly one of these, so callers can classify a
// failure with errors.Is and surface a structured diagnostic instead
// of an opaque message.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrOutOfRange      = errors.New("out of range")
	ErrUndefinedResult = errors.New("undefined result")
)
