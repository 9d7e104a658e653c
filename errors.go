package localization

import "errors"

var (
	// ErrFileNotFound is returned when the document path does not exist.
	ErrFileNotFound = errors.New("localization: file not found")

	// ErrInvalidFormat is returned when a document file cannot be parsed,
	// or when its extension is not one of .json, .yaml, .yml, .toml.
	ErrInvalidFormat = errors.New("localization: invalid document format")

	// ErrUnsupportedLocaleRef is returned when a locale reference of an
	// unrecognized shape is passed to a lookup. It is always surfaced,
	// regardless of the store's strict mode.
	ErrUnsupportedLocaleRef = errors.New("localization: unsupported locale reference")

	// ErrInvalidLocale is returned in strict mode when neither the requested
	// locale nor the default locale is present in the document.
	ErrInvalidLocale = errors.New("localization: unknown locale")

	// ErrNotFound is returned in strict mode when a key is absent from the
	// selected locale section.
	ErrNotFound = errors.New("localization: localization not found")

	// ErrWrongFormat is returned in strict mode when a key resolves to a
	// value of an unexpected shape (non-string for Localize, non-list for
	// Plural).
	ErrWrongFormat = errors.New("localization: wrong localization format")

	// ErrEmptySeparator is returned when the path separator option is empty.
	ErrEmptySeparator = errors.New("localization: separator cannot be empty")

	// ErrNilLogger is returned when a nil logger is passed to WithLogger.
	ErrNilLogger = errors.New("localization: logger cannot be nil")

	// ErrNoSource is returned by Reload when the store was built from an
	// in-memory document rather than a file.
	ErrNoSource = errors.New("localization: store has no backing file")
)
