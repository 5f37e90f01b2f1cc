// Package formats registers the serialization codecs ser2ser can read and
// write. Every codec delegates to an external library; this package only
// adapts them to a common decode/encode surface over the generic value tree.
package formats

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Decoder reads a single value tree from its input stream.
type Decoder interface {
	Decode() (interface{}, error)
}

// Encoder renders a value tree to its output stream.
type Encoder interface {
	Encode(v interface{}, opts EncodeOptions) error
}

// EncodeOptions is the writer-side policy resolved by the caller: the
// effective indent width and whether the color path is active.
type EncodeOptions struct {
	Indent int
	Color  bool
}

// Encoding ties together the decode and encode sides of one wire format.
// Either constructor may return nil when the format supports only one
// direction.
type Encoding interface {
	NewDecoder(io.Reader) Decoder
	NewEncoder(io.Writer) Encoder
}

// Info describes a registered format's capabilities.
type Info struct {
	// Name is the canonical format name used in CLI flags and messages.
	Name string

	// Aliases are additional accepted names.
	Aliases []string

	// Binary marks formats whose output is not guaranteed printable text
	// and must not be written to a terminal without confirmation.
	Binary bool

	// Lexer is the chroma lexer name for highlighting, empty when the
	// format cannot be highlighted.
	Lexer string

	// DefaultIndent is the indent width used when none is requested.
	DefaultIndent int
}

type registration struct {
	info     Info
	encoding Encoding
}

var nameToFormat = map[string]registration{}

// Register maps a format's name and aliases to an Encoding implementation.
func Register(info Info, encoding Encoding) {
	reg := registration{info, encoding}
	nameToFormat[info.Name] = reg
	for _, alias := range info.Aliases {
		nameToFormat[alias] = reg
	}
}

// ByName looks up a registered format by name or alias.
func ByName(name string) (Encoding, Info, bool) {
	reg, ok := nameToFormat[strings.ToLower(name)]
	return reg.encoding, reg.info, ok
}

// Names returns the canonical names of every registered format, sorted.
func Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, reg := range nameToFormat {
		if !seen[reg.info.Name] {
			seen[reg.info.Name] = true
			names = append(names, reg.info.Name)
		}
	}
	sort.Strings(names)
	return names
}

// writeText finishes the text-output path: trim the codec's trailing
// newline, run the color path, and print with exactly one newline.
func writeText(w io.Writer, lexer string, text []byte, opts EncodeOptions) error {
	text = bytes.TrimRight(text, "\n")
	if opts.Color {
		text = Highlight(lexer, text)
	}
	_, err := fmt.Fprintln(w, string(text))
	return err
}
