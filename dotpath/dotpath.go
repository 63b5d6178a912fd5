package dotpath

import "strings"

// Get retrieves the value at the dot-separated path in m.
// The second return value is false when any segment of the path is
// missing or when an intermediate value is not itself a nested map.
func Get(m map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Has reports whether the full dot-separated path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Get(m, path)
	return ok
}

// Set writes value at the dot-separated path in m, creating
// intermediate maps as needed. A non-map value sitting at an
// intermediate segment is replaced by a fresh map.
func Set(m map[string]any, path string, value any) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Forget removes the value at the dot-separated path from m.
// Intermediate maps emptied by the removal are left in place.
func Forget(m map[string]any, path string) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		delete(m, path)
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	Forget(child, rest)
}

// Dot flattens a nested map into a single-level map whose keys are
// dot-separated paths.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	flatten("", m, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}
