package numbervalidator

import "errors"

// Configuration errors returned by New. Each one also matches ErrInvalidConfig.
var (
	// ErrInvalidConfig is the kind shared by every construction error.
	ErrInvalidConfig = errors.New("invalid number validator configuration")

	// ErrInvalidPrecision is returned when precision is zero or negative.
	ErrInvalidPrecision = errors.New("precision must be a positive number")

	// ErrInvalidScale is returned when scale is negative.
	ErrInvalidScale = errors.New("scale must be a non-negative number")

	// ErrScaleNotLessThanPrecision is returned when scale is not strictly below precision.
	ErrScaleNotLessThanPrecision = errors.New("scale must be less or equal than precision - 1")
)

// Format errors returned by Check and Parse. Each one also matches ErrInvalidNumber.
var (
	// ErrInvalidNumber is the kind shared by every format error.
	ErrInvalidNumber = errors.New("invalid number")

	ErrEmptyValue         = errors.New("value is empty")
	ErrMalformedNumber    = errors.New("value is not a decimal number")
	ErrPrecisionExceeded  = errors.New("value has too many digits")
	ErrScaleExceeded      = errors.New("value has too many fractional digits")
	ErrNegativeNotAllowed = errors.New("negative values are not allowed")
)

// kindError reports the specific sentinel as its message while also
// matching the broader kind with errors.Is.
type kindError struct {
	kind error
	err  error
}

func (e kindError) Error() string { return e.err.Error() }

func (e kindError) Is(target error) bool { return target == e.kind }

func (e kindError) Unwrap() error { return e.err }

func configError(err error) error {
	return kindError{kind: ErrInvalidConfig, err: err}
}

func numberError(err error) error {
	return kindError{kind: ErrInvalidNumber, err: err}
}
