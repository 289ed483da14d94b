package reduce

import "encoding/json"

// object is a decoded raw JSON object with total accessors: a missing or
// mistyped field yields the zero value, never an error. All projection
// coercions are built on these.
type object map[string]any

// decodeObject decodes raw into an object, returning an empty object for
// anything that is not a JSON object.
func decodeObject(raw json.RawMessage) object {
	if len(raw) == 0 {
		return object{}
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return object{}
	}
	return o
}

func (o object) str(key string) string {
	s, _ := o[key].(string)
	return s
}

func (o object) integer(key string) int64 {
	f, _ := o[key].(float64)
	return int64(f)
}

func (o object) boolean(key string) bool {
	b, _ := o[key].(bool)
	return b
}

// ref coerces an expandable reference: the bare identifier string is kept,
// anything else (expanded object, null, absent) becomes "".
func (o object) ref(key string) string {
	s, _ := o[key].(string)
	return s
}

// child returns a nested object and whether it was present and non-null.
func (o object) child(key string) (object, bool) {
	m, ok := o[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return object(m), true
}

// list returns the elements of an array-valued field, in source order.
func (o object) list(key string) []any {
	l, _ := o[key].([]any)
	return l
}
