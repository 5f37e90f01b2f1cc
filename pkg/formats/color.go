package formats

import (
	"bytes"
	"os"

	"github.com/alecthomas/chroma/quick"
)

// trueColorSupported returns true if the tty is configured to support
// truecolor.
func trueColorSupported() bool {
	return os.Getenv("COLORTERM") == "truecolor"
}

// ChromaFormatter is a helper to detect the ideal Chroma formatter name for
// colorizing output. It can be overridden with $SER2SER_FORMATTER.
func ChromaFormatter() string {
	if formatter := os.Getenv("SER2SER_FORMATTER"); formatter != "" {
		return formatter
	}
	if trueColorSupported() {
		return "terminal16m"
	}
	return "terminal"
}

// ChromaStyle is a helper to return the default Chroma style. It can be
// overridden with $SER2SER_STYLE.
func ChromaStyle() string {
	if style := os.Getenv("SER2SER_STYLE"); style != "" {
		return style
	}
	return "pygments"
}

// Highlight runs already-rendered text through chroma using the named lexer.
// Any highlighter failure falls back silently to the plain text.
func Highlight(lexer string, text []byte) []byte {
	if lexer == "" {
		return text
	}
	var b bytes.Buffer
	if err := quick.Highlight(&b, string(text), lexer, ChromaFormatter(), ChromaStyle()); err != nil {
		return text
	}
	return b.Bytes()
}
