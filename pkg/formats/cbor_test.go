package formats

import (
	"bytes"
	"testing"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

func TestCBORRoundTrip(t *testing.T) {
	original := tree.Map{
		{Key: "a", Value: int64(1)},
		{Key: "b", Value: []interface{}{"x", true, nil}},
		{Key: "c", Value: tree.Map{{Key: "d", Value: float64(2.5)}}},
	}

	var buf bytes.Buffer
	if err := (cborEncoding{}).NewEncoder(&buf).Encode(original, EncodeOptions{}); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	decoded, err := cborEncoding{}.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !tree.Equal(original, decoded) {
		t.Errorf("round trip mismatch: %#v != %#v", original, decoded)
	}
}

func TestCBORDecodeMalformed(t *testing.T) {
	decoder := cborEncoding{}.NewDecoder(bytes.NewReader([]byte{0xa1, 0x61}))
	if _, err := decoder.Decode(); err == nil {
		t.Error("expected an error for truncated input")
	}
}
