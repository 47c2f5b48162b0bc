package numbervalidator

// Number is a decimal string split into its parts.
type Number struct {
	Sign     string // "", "+" or "-"
	Integer  string
	Fraction string // empty when the value has no separator
}

func (n Number) Negative() bool { return n.Sign == "-" }

// Digits returns the count of integer and fractional digits.
func (n Number) Digits() int {
	return len(n.Integer) + len(n.Fraction)
}

// String renders the number with a period separator.
func (n Number) String() string {
	if n.Fraction == "" {
		return n.Sign + n.Integer
	}
	return n.Sign + n.Integer + "." + n.Fraction
}
