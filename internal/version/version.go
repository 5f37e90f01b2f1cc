// Package version derives the strings behind the --version and --copyright
// flags.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is ser2ser's version string, set via ldflags on release builds.
var Version string

// Copyright is the text printed for the --copyright flag.
const Copyright = `ser2ser
Copyright (C) Klaus Alexander Seistrup
License: GNU General Public License v3 or later`

// UsageVersion introspects the process debug data for Go modules to return a
// version string with the resolved dependency list.
func UsageVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		// Builds stripped of module info still need -v to answer.
		version := Version
		if version == "" {
			version = "devel"
		}
		return fmt.Sprintf("ser2ser version %s (%s)\n", version, runtime.Version())
	}

	if Version == "" {
		// The version wasn't set by ldflags, so fall back to the Go
		// module version.
		Version = bi.Main.Version
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s version %s\n", bi.Path, Version)
	for _, dep := range bi.Deps {
		fmt.Fprintf(&b, "\t%s %s\n", dep.Path, dep.Version)
	}
	return b.String()
}
