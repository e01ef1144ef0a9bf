// Package cli provides the command-line interface for blocknote.
package cli

// CommandLineOpts are the command line options, for `go-flags` to parse the
// command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	EditCommand    EditCommand    `command:"edit" subcommands-optional:"true"`
	DumpCommand    DumpCommand    `command:"dump" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts
