package ser2ser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kseistrup/ser2ser/pkg/formats"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		opts           Options
		expectedOutput string
		expectedErr    string
	}{
		{
			name:  "json to json sorts keys by default",
			input: `{"b": 1, "a": [2, 1]}`,
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "json",
				ColorMode:    ColorNever,
				Indent:       -1,
				SortKeys:     true,
			},
			expectedOutput: `{
  "a": [
    2,
    1
  ],
  "b": 1
}
`,
		},
		{
			name:  "no-sort preserves insertion order",
			input: `{"b": 1, "a": 2}`,
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "json",
				ColorMode:    ColorNever,
				Indent:       -1,
			},
			expectedOutput: `{
  "b": 1,
  "a": 2
}
`,
		},
		{
			name:  "explicit indent width",
			input: `{"a": 1}`,
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "json",
				ColorMode:    ColorNever,
				Indent:       4,
				SortKeys:     true,
			},
			expectedOutput: `{
    "a": 1
}
`,
		},
		{
			name:  "json to yaml",
			input: `{"b": 1, "a": "x"}`,
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "yaml",
				ColorMode:    ColorNever,
				Indent:       -1,
				SortKeys:     true,
			},
			expectedOutput: "a: x\nb: 1\n",
		},
		{
			name:  "yaml to json",
			input: "b: 1\na: x\n",
			opts: Options{
				InputFormat:  "yaml",
				OutputFormat: "json",
				ColorMode:    ColorNever,
				Indent:       -1,
				SortKeys:     true,
			},
			expectedOutput: `{
  "a": "x",
  "b": 1
}
`,
		},
		{
			name:  "unrecognized input format",
			input: `{}`,
			opts: Options{
				InputFormat:  "pickle",
				OutputFormat: "json",
				Indent:       -1,
			},
			expectedErr: "unrecognized input format",
		},
		{
			name:  "unrecognized output format",
			input: `{}`,
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "axon",
				Indent:       -1,
			},
			expectedErr: "unrecognized output format",
		},
		{
			name:  "go literal is output-only",
			input: `{}`,
			opts: Options{
				InputFormat:  "go",
				OutputFormat: "json",
				Indent:       -1,
			},
			expectedErr: "unrecognized input format",
		},
		{
			name:  "binary output to a terminal is refused",
			input: `{"a": 1}`,
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "msgpack",
				Indent:       -1,
				Terminal:     true,
			},
			expectedErr: "--force",
		},
		{
			name:  "malformed json input",
			input: `{"a":`,
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "json",
				Indent:       -1,
			},
			expectedErr: "failed to decode json input",
		},
		{
			name:  "empty input",
			input: "",
			opts: Options{
				InputFormat:  "json",
				OutputFormat: "json",
				Indent:       -1,
			},
			expectedErr: "empty input",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Run(strings.NewReader(tc.input), &buf, tc.opts)

			if tc.expectedErr != "" {
				if err == nil {
					t.Fatalf("expected an error containing %q, got none", tc.expectedErr)
				}
				if !strings.Contains(err.Error(), tc.expectedErr) {
					t.Fatalf("expected error containing %q, got %q", tc.expectedErr, err)
				}
				if buf.Len() != 0 {
					t.Errorf("expected no output after an error, got %q", buf.String())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tc.expectedOutput {
				t.Errorf("expected %q, got %q", tc.expectedOutput, buf.String())
			}
		})
	}
}

func TestRunForcedBinaryOutput(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		InputFormat:  "json",
		OutputFormat: "msgpack",
		Indent:       -1,
		Terminal:     true,
		Force:        true,
	}
	if err := Run(strings.NewReader(`{"a": 1}`), &buf, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected binary output with --force")
	}
}

// A value tree should survive json → yaml → json unchanged.
func TestRunRoundTrip(t *testing.T) {
	opts := Options{
		InputFormat:  "json",
		OutputFormat: "yaml",
		ColorMode:    ColorNever,
		Indent:       -1,
		SortKeys:     true,
	}

	var intermediate bytes.Buffer
	if err := Run(strings.NewReader(`{"a": 1, "b": [1, 2, 3]}`), &intermediate, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts.InputFormat = "yaml"
	opts.OutputFormat = "json"
	var final bytes.Buffer
	if err := Run(&intermediate, &final, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{
  "a": 1,
  "b": [
    1,
    2,
    3
  ]
}
`
	if final.String() != expected {
		t.Errorf("expected %q, got %q", expected, final.String())
	}
}

func TestColorEnabled(t *testing.T) {
	testCases := []struct {
		name     string
		opts     Options
		format   string
		expected bool
	}{
		{"always on text", Options{ColorMode: ColorAlways, OutputFormat: "json"}, "json", true},
		{"never on text", Options{ColorMode: ColorNever, Terminal: true}, "json", false},
		{"auto without terminal", Options{ColorMode: ColorAuto}, "json", false},
		{"always on binary", Options{ColorMode: ColorAlways}, "msgpack", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, info, ok := formats.ByName(tc.format)
			if !ok {
				t.Fatalf("expected %s to be registered", tc.format)
			}
			if got := tc.opts.colorEnabled(info); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
