package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kseistrup/ser2ser/pkg/flagutil"
	"github.com/kseistrup/ser2ser/pkg/formats"
)

func main() {
	var flags flags

	colorFlag := flagutil.NewEnumFlag(&flags.ColorMode, "auto", "always", "never")

	var rootCmd = &cobra.Command{
		Use:   "ser2ser [flags]",
		Short: "serialization to serialization converter",
		Long: `ser2ser reads structured data on standard input and writes it back to
standard output in another serialization format, optionally pretty-printed
and syntax-highlighted.

Supported formats:
` + formatList() + `
$SER2SER_FORMATTER can be set to terminal, terminal16m, json, tokens, html.
$SER2SER_STYLE can be set to any of the following themes:
https://xyproto.github.io/splash/docs/
`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmdFunc(cmd, args, flags)
		},
	}

	rootCmd.Flags().StringVarP(&flags.InputFormat, "input", "i", "json", "input format")
	rootCmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "json", "output format")
	rootCmd.Flags().VarP(colorFlag, "color", "c", "colorize the output")
	rootCmd.Flags().IntVarP(&flags.Indent, "indent", "n", 0, "indent width (default: 2 spaces, 1 for the go literal style)")
	rootCmd.Flags().BoolVarP(&flags.NoSort, "no-sort", "S", false, "preserve mapping key order instead of sorting")
	rootCmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "permit writing binary output to a terminal")
	rootCmd.Flags().BoolVarP(&flags.PrintVersion, "version", "v", false, "print the version and exit")
	rootCmd.Flags().BoolVarP(&flags.PrintCopyright, "copyright", "C", false, "print copyright information and exit")
	rootCmd.Flags().BoolVar(&flags.Debug, "debug", false, "enable debug logging")

	_ = rootCmd.Flags().MarkHidden("debug")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
		os.Exit(1)
	}
}

// formatList renders the registered formats for the help text, so the
// accepted values always reflect what was actually compiled in.
func formatList() string {
	var b strings.Builder
	for _, name := range formats.Names() {
		_, info, _ := formats.ByName(name)
		if info.Binary {
			fmt.Fprintf(&b, "- %s (binary)\n", name)
		} else {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	return b.String()
}
