package localization

import (
	"sort"

	"golang.org/x/text/language"
)

// Locales returns the locale tags present in the document, sorted
// alphabetically.
func (s *Store) Locales() []string {
	tags := make([]string, 0, len(s.doc))
	for tag := range s.doc {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// MatchLocale picks the document locale that best matches the caller's
// preferences, in preference order. It falls back to the default locale
// when nothing matches, and returns an empty string only when the store has
// neither matching locales nor a default.
func (s *Store) MatchLocale(prefs ...string) string {
	available, matcher := s.matcher()
	if matcher == nil {
		return s.defaultLocale
	}

	desired := make([]language.Tag, 0, len(prefs))
	for _, pref := range prefs {
		if tag, err := language.Parse(pref); err == nil {
			desired = append(desired, tag)
		}
	}
	if len(desired) == 0 {
		return s.defaultLocale
	}

	_, index, conf := matcher.Match(desired...)
	if conf == language.No {
		return s.defaultLocale
	}

	return available[index]
}

// MatchAcceptLanguage picks the document locale that best matches an HTTP
// Accept-Language header, honoring quality values. A malformed header
// yields the default locale.
func (s *Store) MatchAcceptLanguage(header string) string {
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return s.defaultLocale
	}

	available, matcher := s.matcher()
	if matcher == nil {
		return s.defaultLocale
	}

	_, index, conf := matcher.Match(desired...)
	if conf == language.No {
		return s.defaultLocale
	}

	return available[index]
}

// matcher builds a language.Matcher over the parseable document locales.
// The parallel slice maps matcher indices back to the original tags, which
// may use non-canonical spellings as document keys.
func (s *Store) matcher() ([]string, language.Matcher) {
	available := make([]string, 0, len(s.doc))
	tags := make([]language.Tag, 0, len(s.doc))

	for _, raw := range s.Locales() {
		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}
		available = append(available, raw)
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return nil, nil
	}

	return available, language.NewMatcher(tags)
}
