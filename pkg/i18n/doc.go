// Package i18n translates message keys into localized templates.
//
// Translations are nested maps per language, loaded by a TranslationAdapter
// (MapAdapter for in-memory data, FSAdapter for YAML or JSON files on any
// fs.FS). Keys are dot-separated paths and templates use %{name}
// placeholders:
//
//	tr, err := i18n.NewDefaultTranslator(ctx)
//	if err != nil {
//	    return err
//	}
//	msg := tr.T("ru", "validation.decimal.scale", "field", "amount", "scale", "2")
//
// NewDefaultTranslator ships English and Russian texts for every
// validation.decimal key produced by the validator package.
package i18n
