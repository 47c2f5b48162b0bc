package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language was configured.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys to templates with %{name} placeholders.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, values := range translations {
		if lang == "" || values == nil {
			return nil, fmt.Errorf("%w: empty language %q", ErrInvalidStructure, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. Args are name/value pairs substituted into
// %{name} placeholders; an odd trailing arg is ignored. Unknown languages use
// the default language. Missing keys return the key itself unless
// WithFallbackToKey(false) was set, in which case "" is returned.
//
//	// "validation.decimal.scale": "at most %{scale} digits after the separator"
//	tr.T("en", "validation.decimal.scale", "scale", "2")
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, ok := t.lookup(lang, key)
	if ok {
		return substitute(tmpl, args)
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is T with an explicit default template for missing keys.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return substitute(tmpl, args)
	}
	return substitute(defaultValue, args)
}

// Tc translates using the language stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	values, ok := t.translations[lang]
	if !ok {
		values, ok = t.translations[t.defaultLang]
		if !ok {
			return "", false
		}
	}

	var current any = values
	for _, part := range strings.Split(key, ".") {
		switch m := current.(type) {
		case map[string]any:
			current, ok = m[part]
		case map[any]any:
			current, ok = m[part]
		default:
			ok = false
		}
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the matching value from args.
// Unknown placeholders are kept as is.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

type localeContextKey struct{}

// SetLocale stores the language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}
