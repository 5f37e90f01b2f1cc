package formats

import (
	"bytes"
	"testing"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

func TestBencodeRoundTrip(t *testing.T) {
	original := tree.Map{
		{Key: "announce", Value: "http://example.com"},
		{Key: "length", Value: int64(42)},
		{Key: "pieces", Value: []interface{}{int64(1), int64(2)}},
	}

	var buf bytes.Buffer
	if err := (bencodeEncoding{}).NewEncoder(&buf).Encode(original, EncodeOptions{}); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	// dictionary keys are already lexical here, so the wire order matches
	expected := "d8:announce18:http://example.com6:lengthi42e6:piecesli1ei2eee"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}

	decoded, err := bencodeEncoding{}.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !tree.Equal(original, decoded) {
		t.Errorf("round trip mismatch: %#v != %#v", original, decoded)
	}
}
