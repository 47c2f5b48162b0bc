package numbervalidator

// Config describes the constraints a Validator enforces.
// Field tags allow loading it with pkg/config.
type Config struct {
	// Precision is the maximum number of positions a value may occupy:
	// integer digits, fractional digits and the sign, if present.
	Precision int `env:"NUMBER_PRECISION" envDefault:"17"`
	// Scale is the maximum number of digits after the separator.
	Scale int `env:"NUMBER_SCALE" envDefault:"2"`
	// OnlyPositive rejects values with a leading minus.
	OnlyPositive bool `env:"NUMBER_ONLY_POSITIVE" envDefault:"false"`
}

// Validate reports the first constraint the configuration breaks.
func (c Config) Validate() error {
	switch {
	case c.Precision <= 0:
		return configError(ErrInvalidPrecision)
	case c.Scale < 0:
		return configError(ErrInvalidScale)
	case c.Scale >= c.Precision:
		return configError(ErrScaleNotLessThanPrecision)
	}
	return nil
}
