package localization

import (
	"fmt"
	"reflect"
)

// Guild is the capability contract for guild-like locale references: any
// object that knows the locale its community prefers. The host bot
// framework's guild type is adapted to this interface; the core never
// depends on the framework itself.
type Guild interface {
	PreferredLocale() string
}

// Interaction is the capability contract for interaction- and context-like
// locale references: objects that belong to a guild.
type Interaction interface {
	Guild() Guild
}

// ResolveLocale normalizes a locale reference to a plain locale tag.
//
// Accepted shapes, in order: a string; a Guild; an Interaction; any value
// with an underlying string kind (locale-enum types); any fmt.Stringer.
// Anything else fails with ErrUnsupportedLocaleRef naming the received
// type. Resolution is pure and never consults the document.
func ResolveLocale(ref any) (string, error) {
	switch v := ref.(type) {
	case string:
		return v, nil
	case Guild:
		return v.PreferredLocale(), nil
	case Interaction:
		g := v.Guild()
		if g == nil {
			return "", fmt.Errorf("%w: %T has no guild", ErrUnsupportedLocaleRef, ref)
		}
		return g.PreferredLocale(), nil
	}

	// Locale-enum types are usually defined as named string types. Checking
	// the kind before fmt.Stringer matters: some frameworks make String()
	// return a display name ("English (US)") rather than the tag.
	rv := reflect.ValueOf(ref)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), nil
	}

	if str, ok := ref.(fmt.Stringer); ok {
		return str.String(), nil
	}

	return "", fmt.Errorf("%w: %T", ErrUnsupportedLocaleRef, ref)
}
