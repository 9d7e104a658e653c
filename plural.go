package localization

import "fmt"

// Plural resolves key to a list of plural forms and selects one by count:
// a count of exactly 1 selects the first form, any other count selects the
// last. Lists with more than two entries only ever expose their first and
// last items. This is a two-bucket singular/general rule, not a CLDR
// plural-category system.
//
// A value that is not a non-empty list of strings fails with ErrWrongFormat
// in strict mode, or logs and returns the key. Lookup failures propagate
// exactly as they do for Localize.
func (s *Store) Plural(key string, count float64, locale any, params ...M) (string, error) {
	value, err := s.Lookup(key, locale, params...)
	if err != nil {
		return "", err
	}

	forms, ok := stringList(value)
	if !ok || len(forms) == 0 {
		tag, _ := ResolveLocale(locale)
		v, err := s.fallback(key, tag, fmt.Errorf("%w: key %q in locale %q holds %T, want list of strings", ErrWrongFormat, key, tag, value))
		if err != nil {
			return "", err
		}
		return v.(string), nil
	}

	if count == 1 {
		return forms[0], nil
	}
	return forms[len(forms)-1], nil
}

// Tn is the ergonomic shorthand for Plural: it returns the selected plural
// form, or the key itself when the lookup fails for any reason.
func (s *Store) Tn(key string, count float64, locale any, params ...M) string {
	text, err := s.Plural(key, count, locale, params...)
	if err != nil {
		return key
	}
	return text
}

func stringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = str
		}
		return out, true
	default:
		return nil, false
	}
}
