package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numvalidator/pkg/i18n"
	"github.com/dmitrymomot/numvalidator/pkg/numbervalidator"
	"github.com/dmitrymomot/numvalidator/pkg/validator"
)

func TestValidationErrors_Localize(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewDefaultTranslator(context.Background())
	require.NoError(t, err)

	v := numbervalidator.MustNew(4, 2, true)
	verrs := validator.ExtractValidationErrors(validator.Apply(
		validator.ValidDecimal("price", "-1", v),
		validator.ValidDecimal("rate", "1.234", v),
		validator.ValidDecimal("total", "12345", v),
		validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "note", Message: "plain message"},
		},
	))
	require.Len(t, verrs, 4)

	assert.Equal(t, map[string][]string{
		"price": {"price must not be negative"},
		"rate":  {"rate has more than 2 digits after the decimal separator"},
		"total": {"total has more than 4 digits including sign"},
		"note":  {"plain message"},
	}, verrs.Localize(tr, "en"))

	ru := verrs.Localize(tr, "ru")
	assert.Equal(t, []string{"price: отрицательные значения запрещены"}, ru["price"])
	assert.Equal(t, []string{"total: больше 4 разрядов с учётом знака"}, ru["total"])
}

func TestValidationError_TranslateWithoutTranslator(t *testing.T) {
	t.Parallel()

	e := validator.ValidationError{Field: "x", Message: "fallback", TranslationKey: "validation.decimal.malformed"}
	assert.Equal(t, "fallback", e.Translate(nil, "en"))
}
