package formats

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/clbanning/mxj"
)

var (
	_ Encoding = xmlEncoding{}
	_ Decoder  = &xmlDecoder{}
	_ Encoder  = &xmlEncoder{}
)

type xmlEncoding struct{}

func (xmlEncoding) NewDecoder(r io.Reader) Decoder {
	return &xmlDecoder{r: r}
}

func (xmlEncoding) NewEncoder(w io.Writer) Encoder {
	return &xmlEncoder{w}
}

type xmlDecoder struct {
	r    io.Reader
	read bool
}

func (d *xmlDecoder) Decode() (interface{}, error) {
	if d.read {
		return nil, io.EOF
	}
	d.read = true

	xmlBytes, err := ioutil.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	xmap, err := mxj.NewMapXml(xmlBytes, true)
	if err != nil {
		return nil, err
	}
	return fromNative(map[string]interface{}(xmap)), nil
}

type xmlEncoder struct {
	w io.Writer
}

func (e *xmlEncoder) Encode(v interface{}, opts EncodeOptions) error {
	native := toNative(v)
	m, ok := native.(map[string]interface{})
	if !ok {
		// XML needs an element to hang the value on.
		m = map[string]interface{}{"doc": native}
	}
	out, err := mxj.Map(m).XmlIndent("", strings.Repeat(" ", opts.Indent))
	if err != nil {
		return err
	}
	return writeText(e.w, "xml", out, opts)
}

func init() {
	Register(Info{
		Name:          "xml",
		Lexer:         "xml",
		DefaultIndent: 2,
	}, xmlEncoding{})
}
