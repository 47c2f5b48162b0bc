package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into language -> nested key map.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	switch strings.ToLower(ext) {
	case "json":
		return JSONParser{}
	case "yaml", "yml":
		return YAMLParser{}
	default:
		return nil
	}
}

type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// byLanguage checks that every top-level entry is a map of translations.
func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrInvalidStructure,
				fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		result[lang] = m
	}
	return result, nil
}
