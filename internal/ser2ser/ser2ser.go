// Package ser2ser implements the stdin → decode → encode → stdout pipeline.
package ser2ser

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kseistrup/ser2ser/pkg/formats"
	"github.com/kseistrup/ser2ser/pkg/tree"
)

// Color policies accepted by Options.ColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options is the immutable run configuration derived from the CLI flags.
type Options struct {
	InputFormat  string
	OutputFormat string
	ColorMode    string
	Indent       int // negative selects the format's default
	SortKeys     bool
	Force        bool
	Terminal     bool // the output stream is an interactive terminal
}

// Run decodes a single value from r in the input format and re-encodes it
// to w in the output format, applying the sort, indent, color, and
// binary-safety policies from opts. Nothing is written once an error has
// been detected, but partial output before a late encoder error is not
// rolled back.
func Run(r io.Reader, w io.Writer, opts Options) error {
	input, _, ok := formats.ByName(opts.InputFormat)
	if !ok {
		return unrecognizedFormat("input", opts.InputFormat)
	}
	output, outputInfo, ok := formats.ByName(opts.OutputFormat)
	if !ok {
		return unrecognizedFormat("output", opts.OutputFormat)
	}

	decoder := input.NewDecoder(r)
	if decoder == nil {
		return unrecognizedFormat("input", opts.InputFormat)
	}
	encoder := output.NewEncoder(w)
	if encoder == nil {
		return unrecognizedFormat("output", opts.OutputFormat)
	}

	// The guard has to trip before anything reaches the stream.
	if outputInfo.Binary && opts.Terminal && !opts.Force {
		return fmt.Errorf("refusing to write %s output to a terminal; pass --force to override", outputInfo.Name)
	}

	logrus.WithFields(logrus.Fields{
		"input":  opts.InputFormat,
		"output": outputInfo.Name,
	}).Debug("decoding standard input")

	v, err := decoder.Decode()
	if err == io.EOF {
		return fmt.Errorf("failed to decode %s input: empty input", opts.InputFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s input: %v", opts.InputFormat, err)
	}

	if opts.SortKeys {
		v = tree.Sorted(v)
	}

	encodeOpts := formats.EncodeOptions{
		Indent: opts.Indent,
		Color:  opts.colorEnabled(outputInfo),
	}
	if encodeOpts.Indent < 0 {
		encodeOpts.Indent = outputInfo.DefaultIndent
	}

	if err := encoder.Encode(v, encodeOpts); err != nil {
		return fmt.Errorf("failed to encode %s output: %v", outputInfo.Name, err)
	}
	return nil
}

// colorEnabled resolves the color policy against the output format's
// capabilities. Binary output is never colorized, and Windows terminals
// usually don't handle the escape codes correctly.
func (opts Options) colorEnabled(info formats.Info) bool {
	if info.Binary || info.Lexer == "" {
		return false
	}
	switch opts.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return opts.Terminal && runtime.GOOS != "windows"
	}
}

func unrecognizedFormat(side, name string) error {
	return fmt.Errorf("unrecognized %s format %q (available: %s)",
		side, name, strings.Join(formats.Names(), ", "))
}
