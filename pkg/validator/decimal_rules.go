package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/numvalidator/pkg/numbervalidator"
)

// ValidDecimal checks that value is a decimal string accepted by v.
// The error message and translation key name the constraint that failed.
func ValidDecimal(field, value string, v *numbervalidator.Validator) Rule {
	err := v.Check(value)
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: decimalError(field, err, v.Config()),
	}
}

// DecimalFormat builds the validator inline. An impossible configuration
// produces a rule that always fails.
func DecimalFormat(field, value string, precision, scale int, onlyPositive bool) Rule {
	v, err := numbervalidator.New(precision, scale, onlyPositive)
	if err != nil {
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{
				Field:          field,
				Message:        err.Error(),
				TranslationKey: "validation.decimal.config",
				TranslationValues: map[string]any{
					"field":     field,
					"precision": precision,
					"scale":     scale,
				},
			},
		}
	}
	return ValidDecimal(field, value, v)
}

func decimalError(field string, err error, cfg numbervalidator.Config) ValidationError {
	values := map[string]any{
		"field":     field,
		"precision": cfg.Precision,
		"scale":     cfg.Scale,
	}

	switch {
	case errors.Is(err, numbervalidator.ErrEmptyValue):
		return ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.decimal.required",
			TranslationValues: values,
		}
	case errors.Is(err, numbervalidator.ErrPrecisionExceeded):
		return ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must have at most %d digits including sign", cfg.Precision),
			TranslationKey:    "validation.decimal.precision",
			TranslationValues: values,
		}
	case errors.Is(err, numbervalidator.ErrScaleExceeded):
		return ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must have at most %d digits after the decimal separator", cfg.Scale),
			TranslationKey:    "validation.decimal.scale",
			TranslationValues: values,
		}
	case errors.Is(err, numbervalidator.ErrNegativeNotAllowed):
		return ValidationError{
			Field:             field,
			Message:           "must not be negative",
			TranslationKey:    "validation.decimal.negative",
			TranslationValues: values,
		}
	default:
		return ValidationError{
			Field:             field,
			Message:           "must be a decimal number",
			TranslationKey:    "validation.decimal.malformed",
			TranslationValues: values,
		}
	}
}
