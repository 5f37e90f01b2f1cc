package formats

import (
	"io"

	"github.com/zeebo/bencode"
)

var (
	_ Encoding = bencodeEncoding{}
	_ Decoder  = &bencodeDecoder{}
	_ Encoder  = &bencodeEncoder{}
)

type bencodeEncoding struct{}

func (bencodeEncoding) NewDecoder(r io.Reader) Decoder {
	return &bencodeDecoder{bencode.NewDecoder(r)}
}

func (bencodeEncoding) NewEncoder(w io.Writer) Encoder {
	return &bencodeEncoder{w}
}

type bencodeDecoder struct {
	decoder *bencode.Decoder
}

func (d *bencodeDecoder) Decode() (interface{}, error) {
	var v interface{}
	if err := d.decoder.Decode(&v); err != nil {
		return nil, err
	}
	// Bencode dictionaries are sorted on the wire, so lexical
	// normalization reproduces document order exactly.
	return fromNative(v), nil
}

type bencodeEncoder struct {
	w io.Writer
}

func (e *bencodeEncoder) Encode(v interface{}, opts EncodeOptions) error {
	return bencode.NewEncoder(e.w).Encode(toNative(v))
}

func init() {
	Register(Info{
		Name:    "bencode",
		Aliases: []string{"torrent"},
		Binary:  true,
	}, bencodeEncoding{})
}
