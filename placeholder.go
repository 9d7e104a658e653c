package localization

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// Expand replaces {name} placeholders in template with values from params.
// A placeholder name may contain a dotted path ({user.name}) which is
// resolved against map keys and exported struct fields of the parameter
// value. Doubled braces escape literal braces: {{ renders as { and }} as }.
//
// A placeholder whose name is missing from params, or whose path cannot be
// resolved, is left in the output verbatim. This is deliberate: translation
// files and call sites evolve independently, and a stray {name} in chat
// output beats a hard failure.
func Expand(template string, params M) string {
	if !strings.ContainsAny(template, "{}") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]

		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			name := template[i+1 : i+1+end]
			if value, ok := resolveParam(params, name); ok {
				fmt.Fprintf(&b, "%v", value)
			} else {
				b.WriteString(template[i : i+end+2])
			}
			i += end + 2
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// substitute applies Expand recursively: strings are expanded, lists and
// mappings are rebuilt with expanded elements, everything else passes
// through unchanged.
func substitute(value any, params M) any {
	switch v := value.(type) {
	case string:
		return Expand(v, params)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = substitute(item, params)
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = Expand(item, params)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = substitute(item, params)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, item := range v {
			out[k] = Expand(item, params)
		}
		return out
	default:
		return value
	}
}

// resolveParam resolves a possibly dotted placeholder name against params.
func resolveParam(params M, name string) (any, bool) {
	if name == "" {
		return nil, false
	}

	segments := strings.Split(name, ".")

	value, ok := params[segments[0]]
	if !ok {
		return nil, false
	}

	for _, segment := range segments[1:] {
		if value, ok = member(value, segment); !ok {
			return nil, false
		}
	}

	return value, true
}

// member looks up a single path segment on a parameter value: map index
// first, then exported struct field (exact name, then case-insensitive).
func member(value any, name string) (any, bool) {
	switch m := value.(type) {
	case M:
		v, ok := m[name]
		return v, ok
	case map[string]any:
		v, ok := m[name]
		return v, ok
	case map[string]string:
		v, ok := m[name]
		return v, ok
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	field := rv.FieldByName(name)
	if !field.IsValid() {
		field = rv.FieldByNameFunc(func(n string) bool {
			return strings.EqualFold(n, name)
		})
	}
	if !field.IsValid() || !field.CanInterface() {
		return nil, false
	}

	return field.Interface(), true
}

func mergeParams(params []M) M {
	switch len(params) {
	case 0:
		return nil
	case 1:
		return params[0]
	}

	merged := make(M)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
