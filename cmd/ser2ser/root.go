package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/kseistrup/ser2ser/internal/ser2ser"
	"github.com/kseistrup/ser2ser/internal/version"
)

// flags are the configuration flags for ser2ser
type flags struct {
	Debug          bool
	InputFormat    string
	OutputFormat   string
	ColorMode      string
	Indent         int
	NoSort         bool
	Force          bool
	PrintVersion   bool
	PrintCopyright bool
}

func runCmdFunc(cmd *cobra.Command, args []string, flags flags) error {
	if flags.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flags.PrintVersion {
		fmt.Print(version.UsageVersion())
		return nil
	}

	if flags.PrintCopyright {
		fmt.Println(version.Copyright)
		return nil
	}

	// An unset --indent means "use the format's default", which the
	// pipeline resolves per output format.
	indent := -1
	if cmd.Flags().Changed("indent") {
		if flags.Indent < 0 {
			return fmt.Errorf("indent width must not be negative")
		}
		indent = flags.Indent
	}

	opts := ser2ser.Options{
		InputFormat:  flags.InputFormat,
		OutputFormat: flags.OutputFormat,
		ColorMode:    flags.ColorMode,
		Indent:       indent,
		SortKeys:     !flags.NoSort,
		Force:        flags.Force,
		Terminal:     terminal.IsTerminal(int(os.Stdout.Fd())),
	}

	return ser2ser.Run(os.Stdin, os.Stdout, opts)
}
