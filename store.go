package localization

import (
	"fmt"
	"log/slog"
	"reflect"
)

// DefaultSeparator is the path separator used for dotted keys unless
// overridden with WithSeparator.
const DefaultSeparator = "."

// M is a map of named parameters substituted into translation strings.
type M map[string]any

// Document maps locale tags to nested translation mappings. Values are
// strings, ordered lists of strings (plural forms), or further nested
// mappings addressed with dotted keys.
type Document map[string]any

// Store owns a translation document together with its lookup policy:
// default locale, strict or lenient error mode, and path separator.
//
// Lookups never mutate the store. Reconfiguration methods (SetDocument,
// SetDefaultLocale, SetStrict, Reload) are not synchronized; callers using
// a store from concurrent goroutines must not reconfigure it concurrently.
type Store struct {
	doc           Document
	path          string
	defaultLocale string
	separator     string
	strict        bool
	log           *slog.Logger
}

// Option configures a Store during construction.
type Option func(*Store) error

// New creates a Store backed by an in-memory document.
func New(doc Document, opts ...Option) (*Store, error) {
	if doc == nil {
		doc = Document{}
	}

	s := &Store{
		doc:       doc,
		separator: DefaultSeparator,
		log:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return s, nil
}

// WithDefaultLocale sets the fallback locale used when the requested locale
// has no entry in the document.
func WithDefaultLocale(tag string) Option {
	return func(s *Store) error {
		s.defaultLocale = tag
		return nil
	}
}

// Strict makes every data-availability failure (unknown locale, missing key,
// wrong value shape) surface as a typed error instead of degrading to the
// key with a logged diagnostic.
func Strict() Option {
	return func(s *Store) error {
		s.strict = true
		return nil
	}
}

// WithSeparator overrides the separator used to split dotted keys.
func WithSeparator(sep string) Option {
	return func(s *Store) error {
		if sep == "" {
			return ErrEmptySeparator
		}
		s.separator = sep
		return nil
	}
}

// WithLogger sets the logger used for lenient-mode diagnostics.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) error {
		if log == nil {
			return ErrNilLogger
		}
		s.log = log
		return nil
	}
}

// Document returns the underlying translation document.
// The returned map is shared with the store; treat it as read-only.
func (s *Store) Document() Document {
	return s.doc
}

// SetDocument replaces the backing document. Subsequent lookups see the new
// document immediately; no state from the previous document is retained.
func (s *Store) SetDocument(doc Document) {
	if doc == nil {
		doc = Document{}
	}
	s.doc = doc
	s.path = ""
}

// DefaultLocale returns the configured fallback locale, if any.
func (s *Store) DefaultLocale() string {
	return s.defaultLocale
}

// SetDefaultLocale changes the fallback locale at runtime.
func (s *Store) SetDefaultLocale(tag string) {
	s.defaultLocale = tag
}

// Strict reports whether the store surfaces data-availability failures as
// errors.
func (s *Store) Strict() bool {
	return s.strict
}

// SetStrict switches between strict and lenient error modes at runtime.
func (s *Store) SetStrict(strict bool) {
	s.strict = strict
}

// Separator returns the path separator for dotted keys.
func (s *Store) Separator() string {
	return s.separator
}

// Path returns the file the document was loaded from, or an empty string
// for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// Equal reports whether two stores hold equal documents. The default
// locale, error mode, and separator do not participate in equality.
func (s *Store) Equal(other *Store) bool {
	if other == nil {
		return false
	}
	return reflect.DeepEqual(s.doc, other.doc)
}

// String implements fmt.Stringer.
func (s *Store) String() string {
	return fmt.Sprintf("localization.Store(locales=%v default=%q strict=%v)", s.Locales(), s.defaultLocale, s.strict)
}
