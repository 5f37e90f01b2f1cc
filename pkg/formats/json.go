package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

var (
	_ Encoding = jsonEncoding{}
	_ Decoder  = &jsonDecoder{}
	_ Encoder  = &jsonEncoder{}
)

type jsonEncoding struct{}

func (jsonEncoding) NewDecoder(r io.Reader) Decoder {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	return &jsonDecoder{decoder}
}

func (jsonEncoding) NewEncoder(w io.Writer) Encoder {
	return &jsonEncoder{w}
}

type jsonDecoder struct {
	decoder *json.Decoder
}

// Decode walks the token stream instead of unmarshaling into Go maps so
// that object key order survives.
func (d *jsonDecoder) Decode() (interface{}, error) {
	tok, err := d.decoder.Token()
	if err != nil {
		return nil, err
	}
	return d.value(tok)
}

func (d *jsonDecoder) value(tok json.Token) (interface{}, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var m tree.Map
			for d.decoder.More() {
				keyTok, err := d.decoder.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				valTok, err := d.decoder.Token()
				if err != nil {
					return nil, err
				}
				val, err := d.value(valTok)
				if err != nil {
					return nil, err
				}
				m = append(m, tree.Entry{Key: key, Value: val})
			}
			// consume the closing brace
			if _, err := d.decoder.Token(); err != nil {
				return nil, err
			}
			if m == nil {
				m = tree.Map{}
			}
			return m, nil
		case '[':
			seq := []interface{}{}
			for d.decoder.More() {
				tok, err := d.decoder.Token()
				if err != nil {
					return nil, err
				}
				val, err := d.value(tok)
				if err != nil {
					return nil, err
				}
				seq = append(seq, val)
			}
			if _, err := d.decoder.Token(); err != nil {
				return nil, err
			}
			return seq, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		// nil, bool, or string
		return t, nil
	}
}

type jsonEncoder struct {
	w io.Writer
}

func (e *jsonEncoder) Encode(v interface{}, opts EncodeOptions) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", opts.Indent)); err != nil {
		return err
	}
	return writeText(e.w, "json", buf.Bytes(), opts)
}

func init() {
	Register(Info{
		Name:          "json",
		Aliases:       []string{"js", "javascript"},
		Lexer:         "json",
		DefaultIndent: 2,
	}, jsonEncoding{})
}
