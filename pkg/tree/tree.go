// Package tree defines the generic value tree that every codec decodes into
// and encodes from: nil, booleans, numbers, strings, sequences, and ordered
// string-keyed mappings.
package tree

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Entry is a single key/value pair in a Map.
type Entry struct {
	Key   string
	Value interface{}
}

// Map is a mapping that remembers insertion order, in the spirit of
// yaml.v2's MapSlice. Plain Go maps lose document order, which the writer
// needs when key sorting is disabled.
type Map []Entry

// Get returns the value for key and whether it was present.
func (m Map) Get(key string) (interface{}, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in entry order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// MarshalJSON writes the mapping as a JSON object with keys in entry order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Sorted returns a deep copy of v with every mapping's keys in lexical
// order. Scalars and sequences are returned as-is apart from recursion.
func Sorted(v interface{}) interface{} {
	switch t := v.(type) {
	case Map:
		out := make(Map, len(t))
		copy(out, t)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		for i := range out {
			out[i].Value = Sorted(out[i].Value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = Sorted(t[i])
		}
		return out
	default:
		return v
	}
}

// Equal reports structural equality of two trees. Numbers compare by value
// regardless of their Go type, since codecs disagree on int64 vs float64.
func Equal(a, b interface{}) bool {
	switch av := a.(type) {
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Key != bv[i].Key || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	default:
		an, aNum := asFloat(a)
		bn, bNum := asFloat(b)
		if aNum || bNum {
			return aNum && bNum && an == bn
		}
		return a == b
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
