// Package normalize extracts canonical values from decoded JSON
// provider responses.
package normalize

// lookup walks a decoded JSON value. Each step is either a string key
// into a map[string]any or an int index into a []any.
func lookup(raw any, path ...any) (any, bool) {
	current := raw
	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = m[key]
			if !ok {
				return nil, false
			}
		case int:
			s, ok := current.([]any)
			if !ok || key < 0 || key >= len(s) {
				return nil, false
			}
			current = s[key]
		default:
			return nil, false
		}
	}
	return current, true
}

// String returns the string at the given path, or false when the path
// is missing or the value has another type.
func String(raw any, path ...any) (string, bool) {
	v, ok := lookup(raw, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Floats returns the numeric slice at the given path. Every element
// must decode as a float64 (the default for JSON numbers).
func Floats(raw any, path ...any) ([]float64, bool) {
	v, ok := lookup(raw, path...)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(s))
	for i, item := range s {
		f, ok := item.(float64)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// Strings returns the string values found at subPath inside each
// element of the array at path. Elements missing subPath are skipped.
func Strings(raw any, path []any, subPath ...any) ([]string, bool) {
	v, ok := lookup(raw, path...)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(s))
	for _, item := range s {
		if str, ok := String(item, subPath...); ok {
			out = append(out, str)
		}
	}
	return out, true
}
