package validator

import "errors"

// ErrValidationFailed is matched by every non-nil error returned from Apply.
var ErrValidationFailed = errors.New("validation failed")
