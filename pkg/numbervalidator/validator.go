package numbervalidator

import (
	"fmt"
	"regexp"
)

// numberRegex matches an optional sign, integer digits and an optional
// fractional part introduced by a period or a comma.
var numberRegex = regexp.MustCompile(`^([+-]?)(\d+)(?:[.,](\d+))?$`)

// Validator checks decimal strings against a fixed Config.
// It is immutable and safe for concurrent use.
type Validator struct {
	cfg Config
}

// New creates a Validator. It fails when precision is not positive, when scale
// is negative, or when scale is not strictly less than precision.
func New(precision, scale int, onlyPositive bool) (*Validator, error) {
	return NewFromConfig(Config{
		Precision:    precision,
		Scale:        scale,
		OnlyPositive: onlyPositive,
	})
}

// NewFromConfig creates a Validator from a loaded Config.
func NewFromConfig(cfg Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Validator{cfg: cfg}, nil
}

// MustNew works like New but panics on an invalid configuration.
func MustNew(precision, scale int, onlyPositive bool) *Validator {
	v, err := New(precision, scale, onlyPositive)
	if err != nil {
		panic(fmt.Sprintf("numbervalidator: %v", err))
	}
	return v
}

func (v *Validator) Precision() int     { return v.cfg.Precision }
func (v *Validator) Scale() int         { return v.cfg.Scale }
func (v *Validator) OnlyPositive() bool { return v.cfg.OnlyPositive }

// Config returns a copy of the validator configuration.
func (v *Validator) Config() Config { return v.cfg }

// IsValidNumber reports whether value is a well-formed decimal number that
// fits the configured precision, scale and sign policy.
func (v *Validator) IsValidNumber(value string) bool {
	return v.Check(value) == nil
}

// IsValidNumberPtr is IsValidNumber for optional input; nil is never valid.
func (v *Validator) IsValidNumberPtr(value *string) bool {
	if value == nil {
		return false
	}
	return v.IsValidNumber(*value)
}

// Check validates value and returns the first broken constraint, or nil.
// Returned errors match ErrInvalidNumber.
func (v *Validator) Check(value string) error {
	_, err := v.Parse(value)
	return err
}

// Parse validates value and returns its decomposition.
func (v *Validator) Parse(value string) (Number, error) {
	if value == "" {
		return Number{}, numberError(ErrEmptyValue)
	}

	m := numberRegex.FindStringSubmatch(value)
	if m == nil {
		return Number{}, numberError(ErrMalformedNumber)
	}
	n := Number{Sign: m[1], Integer: m[2], Fraction: m[3]}

	// The sign takes one position of the precision budget.
	if len(n.Sign)+n.Digits() > v.cfg.Precision {
		return Number{}, numberError(ErrPrecisionExceeded)
	}
	if len(n.Fraction) > v.cfg.Scale {
		return Number{}, numberError(ErrScaleExceeded)
	}
	if v.cfg.OnlyPositive && n.Negative() {
		return Number{}, numberError(ErrNegativeNotAllowed)
	}

	return n, nil
}
