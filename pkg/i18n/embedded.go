package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewDefaultTranslator loads the bundled translations for validation
// messages and command output.
func NewDefaultTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(YAMLParser{}, locales, "locales"), options...)
}
