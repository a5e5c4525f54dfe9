package utils

import (
	"fmt"
	"strings"
)

type options struct {
	noColorize bool
	verbose    bool
}

var opts = &options{}

type optInterface struct{}

// Opts exposes read-only access to the global option set.
func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

func (optInterface) OnVerbose(do func()) {
	if opts.verbose {
		do()
	}
}

// SetNoColorize disables pretty printer colorization.
func SetNoColorize(b bool) {
	opts.noColorize = b
}

// SetVerbose enables verbose output.
func SetVerbose(b bool) {
	opts.verbose = b
}

// CanColorize guards a colorization function behind the no-colorize option.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}
