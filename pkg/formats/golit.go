package formats

import (
	"bytes"
	"io"
	"strings"

	"github.com/alecthomas/repr"
)

var (
	_ Encoding = goEncoding{}
	_ Encoder  = &goEncoder{}
)

// goEncoding renders the value tree as a Go composite literal. It is
// output-only; there is nothing to decode a literal back with.
type goEncoding struct{}

func (goEncoding) NewDecoder(io.Reader) Decoder { return nil }

func (goEncoding) NewEncoder(w io.Writer) Encoder {
	return &goEncoder{w}
}

type goEncoder struct {
	w io.Writer
}

func (e *goEncoder) Encode(v interface{}, opts EncodeOptions) error {
	var buf bytes.Buffer
	printer := repr.New(&buf, repr.Indent(strings.Repeat(" ", opts.Indent)))
	printer.Print(toNative(v))
	return writeText(e.w, "go", buf.Bytes(), opts)
}

func init() {
	Register(Info{
		Name:          "go",
		Aliases:       []string{"golang", "repr"},
		Lexer:         "go",
		DefaultIndent: 1,
	}, goEncoding{})
}
