// Package validator turns decimal format checks into declarative rules that
// can be combined with Apply and reported field by field.
//
// A Rule pairs a Check function with a ValidationError carrying a message, a
// translation key and translation values. Apply evaluates rules in order and
// returns a ValidationErrors slice for the ones that failed:
//
//	amount := numbervalidator.MustNew(12, 2, true)
//	err := validator.Apply(
//	    validator.ValidDecimal("total", form.Total, amount),
//	    validator.DecimalFormat("rate", form.Rate, 5, 4, false),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// Translation keys live under "validation.decimal": required, malformed,
// precision, scale, negative and config. Every key receives the field name,
// precision and scale as translation values.
//
// ValidationErrors implements Is, so errors.Is(err, ErrValidationFailed)
// reports whether Apply rejected the input.
package validator
