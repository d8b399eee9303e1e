package config

import (
	flag "github.com/spf13/pflag"
)

// NewUnsortedFlagSet returns a FlagSet that prints flags in definition order.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, errorHandling)
	flagset.SortFlags = false

	return flagset
}

// NewFlagSet returns the vizcore command line flags. Flag names equal the
// configuration keys they override.
func NewFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	d := Defaults()

	fs := NewUnsortedFlagSet(name, errorHandling)
	fs.StringP(FlagConfig, "c", "", "path to a YAML or JSON configuration file")
	fs.String(KeyLogLevel, d[KeyLogLevel].(string), "minimum log level (debug, info, warn, error)")
	fs.String(KeyLogFormat, d[KeyLogFormat].(string), "log encoding (console or json)")
	fs.StringP(KeyScenario, "s", d[KeyScenario].(string), "YAML scenario to run before reading commands")
	fs.Bool(KeyTreeVerify, d[KeyTreeVerify].(bool), "verify the red-black tree after every mutation")
	fs.Int64(KeyGraphWeight, d[KeyGraphWeight].(int64), "weight of edges created without one")
	fs.Int(KeyRenderIndent, d[KeyRenderIndent].(int), "spaces per nesting level in rendered output")

	return fs
}
