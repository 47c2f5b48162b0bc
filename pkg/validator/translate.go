package validator

import (
	"fmt"
	"sort"
)

// Translator renders a translation key with name/value pairs.
// *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Translate renders the error in lang. Errors without a translation key
// keep their Message.
func (e ValidationError) Translate(t Translator, lang string) string {
	if e.TranslationKey == "" || t == nil {
		return e.Message
	}

	names := make([]string, 0, len(e.TranslationValues))
	for name := range e.TranslationValues {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]string, 0, len(names)*2)
	for _, name := range names {
		args = append(args, name, fmt.Sprint(e.TranslationValues[name]))
	}
	return t.T(lang, e.TranslationKey, args...)
}

// Localize returns translated messages grouped by field.
func (ve ValidationErrors) Localize(t Translator, lang string) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Translate(t, lang))
	}
	return out
}
