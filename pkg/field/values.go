package field

import "maps"

// Values holds the current form state keyed by field key. Text-like fields
// store strings, toggles store bools.
type Values map[string]any

// String returns the string stored under key, or "" for missing and
// non-string entries.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Bool returns the bool stored under key, or false.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// IsEmpty treats a missing key, "" and false as empty. Whitespace is a value.
func (v Values) IsEmpty(key string) bool {
	switch val := v[key].(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	default:
		return false
	}
}

// Clone returns a shallow copy safe to hand to collaborators.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	return maps.Clone(v)
}

// Errors maps a field key to a user-facing message. A missing key means the
// field has no error.
type Errors map[string]string

// Valid reports whether there are no errors.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Has reports whether key has an error.
func (e Errors) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Clear returns a copy of e without key.
func (e Errors) Clear(key string) Errors {
	out := make(Errors, len(e))
	for k, msg := range e {
		if k != key {
			out[k] = msg
		}
	}
	return out
}

// Keys returns the keys with errors in step order.
func (e Errors) Keys(step Step) []string {
	keys := make([]string, 0, len(e))
	for _, def := range step.Fields {
		if e.Has(def.Key) {
			keys = append(keys, def.Key)
		}
	}
	return keys
}
