package localization

import (
	"fmt"
	"strings"
)

// Lookup resolves key for the given locale reference and returns the raw
// localized value with placeholders substituted. The value is a string, a
// list of strings (plural forms), or a nested mapping when key addresses an
// inner node.
//
// The requested locale's section is used when present and non-empty;
// otherwise the default locale's section. When both are missing the lookup
// fails with ErrInvalidLocale in strict mode, or logs the condition and
// returns the key itself. A key absent after traversal fails the same way
// with ErrNotFound.
func (s *Store) Lookup(key string, locale any, params ...M) (any, error) {
	tag, err := ResolveLocale(locale)
	if err != nil {
		return nil, err
	}

	section, ok := s.section(tag)
	if !ok {
		return s.fallback(key, tag, fmt.Errorf("%w: %q", ErrInvalidLocale, tag))
	}

	value, ok := s.traverse(section, key)
	if !ok {
		return s.fallback(key, tag, fmt.Errorf("%w: key %q in locale %q", ErrNotFound, key, tag))
	}

	return substitute(value, mergeParams(params)), nil
}

// Localize returns the localized text for key. It behaves as Lookup but
// requires the resolved value to be a string; any other shape fails with
// ErrWrongFormat in strict mode, or logs and returns the key.
func (s *Store) Localize(key string, locale any, params ...M) (string, error) {
	value, err := s.Lookup(key, locale, params...)
	if err != nil {
		return "", err
	}

	text, ok := value.(string)
	if !ok {
		tag, _ := ResolveLocale(locale)
		v, err := s.fallback(key, tag, fmt.Errorf("%w: key %q in locale %q holds %T, want string", ErrWrongFormat, key, tag, value))
		if err != nil {
			return "", err
		}
		return v.(string), nil
	}

	return text, nil
}

// T is the ergonomic shorthand for Localize: it returns the localized text,
// or the key itself when the lookup fails for any reason.
func (s *Store) T(key string, locale any, params ...M) string {
	text, err := s.Localize(key, locale, params...)
	if err != nil {
		return key
	}
	return text
}

// section selects the translation mapping for tag, falling back to the
// default locale. An empty or non-mapping entry counts as absent.
func (s *Store) section(tag string) (map[string]any, bool) {
	if m, ok := asMap(s.doc[tag]); ok && len(m) > 0 {
		return m, true
	}
	if s.defaultLocale != "" && s.defaultLocale != tag {
		if m, ok := asMap(s.doc[s.defaultLocale]); ok && len(m) > 0 {
			return m, true
		}
	}
	return nil, false
}

// traverse resolves key inside section. A key containing the separator is
// split and walked one segment at a time; traversal short-circuits as soon
// as a segment is missing or the current value is not a mapping.
func (s *Store) traverse(section map[string]any, key string) (any, bool) {
	if !strings.Contains(key, s.separator) {
		value, ok := section[key]
		return value, ok && value != nil
	}

	var current any = section
	for _, segment := range strings.Split(key, s.separator) {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		if current, ok = m[segment]; !ok || current == nil {
			return nil, false
		}
	}

	return current, true
}

// fallback implements the error-vs-fallback branch shared by every
// data-availability failure: strict stores surface the typed error, lenient
// stores emit exactly one diagnostic and degrade to the key as text.
func (s *Store) fallback(key, tag string, err error) (any, error) {
	if s.strict {
		return nil, err
	}
	s.log.Error("localization fallback", "key", key, "locale", tag, "error", err)
	return key, nil
}

func asMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	case M:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	default:
		return nil, false
	}
}
