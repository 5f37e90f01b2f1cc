package formats

import (
	"fmt"
	"sort"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

// toNative converts a tree value into plain Go maps and slices for codecs
// whose libraries reflect over native types. Mapping order is lost.
func toNative(v interface{}) interface{} {
	switch t := v.(type) {
	case tree.Map:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = toNative(e.Value)
		}
		return m
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = toNative(t[i])
		}
		return out
	default:
		return v
	}
}

// fromNative converts a codec-native value into tree form. Go maps carry no
// document order, so their keys come out lexically sorted.
func fromNative(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return mapToTree(t)
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[keyString(k)] = val
		}
		return mapToTree(m)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = fromNative(t[i])
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = mapToTree(t[i])
		}
		return out
	default:
		return v
	}
}

func mapToTree(m map[string]interface{}) tree.Map {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(tree.Map, 0, len(keys))
	for _, k := range keys {
		out = append(out, tree.Entry{Key: k, Value: fromNative(m[k])})
	}
	return out
}

func keyString(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
