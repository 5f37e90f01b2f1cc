package formats

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

var (
	_ Encoding = msgpackEncoding{}
	_ Decoder  = &msgpackDecoder{}
	_ Encoder  = &msgpackEncoder{}
)

type msgpackEncoding struct{}

func (msgpackEncoding) NewDecoder(r io.Reader) Decoder {
	return &msgpackDecoder{msgpack.NewDecoder(r)}
}

func (msgpackEncoding) NewEncoder(w io.Writer) Encoder {
	return &msgpackEncoder{msgpack.NewEncoder(w)}
}

type msgpackDecoder struct {
	decoder *msgpack.Decoder
}

// Decode walks maps and arrays by hand so mapping key order survives;
// DecodeInterface would shuffle them through Go maps.
func (d *msgpackDecoder) Decode() (interface{}, error) {
	return d.value()
}

func (d *msgpackDecoder) value() (interface{}, error) {
	code, err := d.decoder.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := d.decoder.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		m := make(tree.Map, 0, n)
		for i := 0; i < n; i++ {
			key, err := d.decoder.DecodeString()
			if err != nil {
				return nil, err
			}
			value, err := d.value()
			if err != nil {
				return nil, err
			}
			m = append(m, tree.Entry{Key: key, Value: value})
		}
		return m, nil
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := d.decoder.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		seq := make([]interface{}, 0, n)
		for i := 0; i < n; i++ {
			value, err := d.value()
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil
	default:
		return d.decoder.DecodeInterfaceLoose()
	}
}

type msgpackEncoder struct {
	encoder *msgpack.Encoder
}

func (e *msgpackEncoder) Encode(v interface{}, opts EncodeOptions) error {
	return e.value(v)
}

func (e *msgpackEncoder) value(v interface{}) error {
	switch t := v.(type) {
	case tree.Map:
		if err := e.encoder.EncodeMapLen(len(t)); err != nil {
			return err
		}
		for _, entry := range t {
			if err := e.encoder.EncodeString(entry.Key); err != nil {
				return err
			}
			if err := e.value(entry.Value); err != nil {
				return err
			}
		}
		return nil
	case []interface{}:
		if err := e.encoder.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for _, item := range t {
			if err := e.value(item); err != nil {
				return err
			}
		}
		return nil
	default:
		return e.encoder.Encode(v)
	}
}

func init() {
	Register(Info{
		Name:    "msgpack",
		Aliases: []string{"messagepack", "mp"},
		Binary:  true,
	}, msgpackEncoding{})
}
