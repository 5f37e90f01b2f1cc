package formats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

func TestYAMLDecodePreservesOrder(t *testing.T) {
	decoder := yamlEncoding{}.NewDecoder(strings.NewReader("b: 1\na: two\n"))
	v, err := decoder.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := v.(tree.Map)
	if !ok {
		t.Fatalf("expected tree.Map, got %T", v)
	}
	keys := m.Keys()
	if keys[0] != "b" || keys[1] != "a" {
		t.Errorf("unexpected key order: %v", keys)
	}
	if a, _ := m.Get("a"); a != "two" {
		t.Errorf("expected \"two\", got %#v", a)
	}
}

func TestYAMLEncodeScalars(t *testing.T) {
	m := tree.Map{
		{Key: "a", Value: int64(1)},
		{Key: "b", Value: "x"},
		{Key: "c", Value: nil},
	}

	var buf bytes.Buffer
	err := yamlEncoding{}.NewEncoder(&buf).Encode(m, EncodeOptions{Indent: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "a: 1\nb: x\nc: null\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	original := tree.Map{
		{Key: "b", Value: []interface{}{int64(1), int64(2)}},
		{Key: "a", Value: tree.Map{{Key: "nested", Value: true}}},
	}

	var buf bytes.Buffer
	if err := (yamlEncoding{}).NewEncoder(&buf).Encode(original, EncodeOptions{Indent: 2}); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	decoded, err := yamlEncoding{}.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !tree.Equal(original, decoded) {
		t.Errorf("round trip mismatch: %#v != %#v", original, decoded)
	}
}
