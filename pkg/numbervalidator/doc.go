// Package numbervalidator checks that strings are decimal numbers fitting a
// fixed precision, scale and sign policy.
//
// A Validator is built once from its constraints and then used as a pure
// predicate. Construction fails fast on an impossible configuration, while
// malformed input never produces a panic: IsValidNumber simply returns false.
//
// # Format
//
// Accepted values have an optional sign, one or more ASCII digits and an
// optional fractional part made of a single separator ('.' or ',') followed by
// one or more digits:
//
//	10   +1   -4.59   000,10
//
// Rejected forms include "1.", ".1", "1..2", "+-.", "5 2" and "4_4".
//
// # Limits
//
//   - precision bounds the sign, integer digits and fractional digits together;
//     the separator is not counted.
//   - scale bounds the fractional digits.
//   - onlyPositive rejects a leading '-'.
//
// # Usage
//
//	v, err := numbervalidator.New(4, 2, false)
//	if err != nil {
//	    return err
//	}
//	v.IsValidNumber("-4.59") // true
//	v.IsValidNumber("-14.59") // false, five positions
//
// Check and Parse expose the reason a value was rejected. Every returned error
// matches ErrInvalidNumber, construction errors match ErrInvalidConfig.
package numbervalidator
