// Package flagutil provides pflag.Value implementations shared by the CLI.
package flagutil

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var (
	// validate these types implement the pflag.Value interface at compile time
	_ pflag.Value = &EnumFlag{}
)

// EnumFlag implements pflag.Value and restricts a string flag to a fixed
// set of values.
type EnumFlag struct {
	value   *string
	allowed []string
}

// NewEnumFlag returns an EnumFlag bound to value. The first allowed value
// becomes the default.
func NewEnumFlag(value *string, allowed ...string) *EnumFlag {
	*value = allowed[0]
	return &EnumFlag{value: value, allowed: allowed}
}

// String implements pflag.Value
func (f *EnumFlag) String() string {
	return *f.value
}

// Set implements pflag.Value
func (f *EnumFlag) Set(input string) error {
	for _, v := range f.allowed {
		if input == v {
			*f.value = input
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(f.allowed, ", "))
}

// Type implements pflag.Value
func (f *EnumFlag) Type() string {
	return strings.Join(f.allowed, "|")
}
