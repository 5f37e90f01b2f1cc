package formats

import (
	"io"
	"io/ioutil"

	"github.com/fxamacker/cbor/v2"
)

var (
	_ Encoding = cborEncoding{}
	_ Decoder  = &cborDecoder{}
	_ Encoder  = &cborEncoder{}

	// cborEncMode emits core-deterministic CBOR, so map keys are always
	// sorted on the wire regardless of the sort flag.
	cborEncMode cbor.EncMode
)

type cborEncoding struct{}

func (cborEncoding) NewDecoder(r io.Reader) Decoder {
	return &cborDecoder{r: r}
}

func (cborEncoding) NewEncoder(w io.Writer) Encoder {
	return &cborEncoder{w}
}

type cborDecoder struct {
	r    io.Reader
	read bool
}

func (d *cborDecoder) Decode() (interface{}, error) {
	if d.read {
		return nil, io.EOF
	}
	d.read = true

	data, err := ioutil.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := cbor.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return fromNative(v), nil
}

type cborEncoder struct {
	w io.Writer
}

func (e *cborEncoder) Encode(v interface{}, opts EncodeOptions) error {
	data, err := cborEncMode.Marshal(toNative(v))
	if err != nil {
		return err
	}
	_, err = e.w.Write(data)
	return err
}

func init() {
	var err error
	cborEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}

	Register(Info{
		Name:   "cbor",
		Binary: true,
	}, cborEncoding{})
}
