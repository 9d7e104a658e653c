// Package localization is a small i18n helper for chat-bot applications:
// it looks up translated strings by key and locale inside a loaded JSON,
// YAML, or TOML document, substitutes named placeholders, and falls back to
// a default locale or to the key itself when data is missing.
//
// # Basic Usage
//
// Create a Store from an in-memory document and look up text:
//
//	store, err := localization.New(localization.Document{
//		"en": map[string]any{
//			"greet": "hi {name}",
//		},
//		"de": map[string]any{
//			"greet": "hallo {name}",
//		},
//	}, localization.WithDefaultLocale("en"))
//
//	msg, err := store.Localize("greet", "de", localization.M{"name": "Bo"})
//	// Output: "hallo Bo"
//
// Or load the same shape from a file:
//
//	store, err := localization.Load("locales.yaml",
//		localization.WithDefaultLocale("en"))
//
// # Dotted Keys
//
// Nested mappings are addressed with dotted keys, split on the store's
// separator (default "."):
//
//	msg, _ := store.Localize("errors.not_found", "en")
//
// Traversal stops as soon as a segment is missing or the current value is
// not a mapping; the lookup then falls back like any missing key.
//
// # Plural Forms
//
// A key may hold an ordered list of strings, where the first entry is the
// singular form and the last is the general plural form:
//
//	// "apple": ["one apple", "many apples"]
//	store.Plural("apple", 1, "en")  // "one apple"
//	store.Plural("apple", 5, "en")  // "many apples"
//
// # Locale References
//
// Lookups accept more than plain tags: any value of string kind, any
// fmt.Stringer, and objects satisfying the Guild or Interaction capability
// interfaces all resolve to a locale tag. The discord subpackage adapts
// discordgo objects to these interfaces.
//
// # Error Modes
//
// By default a store is lenient: unknown locales, missing keys, and
// wrongly-shaped values log one diagnostic through log/slog and degrade to
// returning the key as text. Constructing the store with Strict() surfaces
// those conditions as typed errors instead (ErrInvalidLocale, ErrNotFound,
// ErrWrongFormat). Construction failures and unsupported locale references
// are errors in both modes.
//
// # Placeholders
//
// Translation strings use single-brace {name} placeholders, with dotted
// access into parameter values ({user.Name}) and doubled braces as escapes.
// Missing names are left in the output verbatim.
//
// # Concurrency
//
// Lookups never mutate the store and may run concurrently. The
// reconfiguration methods (SetDocument, SetDefaultLocale, SetStrict,
// Reload) are not synchronized and must not race with in-flight lookups.
package localization
