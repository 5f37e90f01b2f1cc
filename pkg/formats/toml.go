package formats

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

var (
	_ Encoding = tomlEncoding{}
	_ Decoder  = &tomlDecoder{}
	_ Encoder  = &tomlEncoder{}

	errTOMLTable = errors.New("toml can only encode a top-level mapping")
)

type tomlEncoding struct{}

func (tomlEncoding) NewDecoder(r io.Reader) Decoder {
	return &tomlDecoder{r: r}
}

func (tomlEncoding) NewEncoder(w io.Writer) Encoder {
	return &tomlEncoder{w}
}

type tomlDecoder struct {
	r    io.Reader
	read bool
}

func (d *tomlDecoder) Decode() (interface{}, error) {
	if d.read {
		return nil, io.EOF
	}
	d.read = true

	// BurntSushi hands back plain Go maps, so document order is gone by
	// the time we see the values; keys are normalized lexically.
	var raw map[string]interface{}
	if _, err := toml.NewDecoder(d.r).Decode(&raw); err != nil {
		return nil, err
	}
	return fromNative(raw), nil
}

type tomlEncoder struct {
	w io.Writer
}

func (e *tomlEncoder) Encode(v interface{}, opts EncodeOptions) error {
	m, ok := v.(tree.Map)
	if !ok {
		return errTOMLTable
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = strings.Repeat(" ", opts.Indent)
	if err := enc.Encode(toNative(m)); err != nil {
		return err
	}
	return writeText(e.w, "toml", buf.Bytes(), opts)
}

func init() {
	Register(Info{
		Name:          "toml",
		Lexer:         "toml",
		DefaultIndent: 2,
	}, tomlEncoding{})
}
