package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrLoadingCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadDir  = errors.New("failed to read translation directory")
	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrNoTranslations   = errors.New("no translation files found")
)
