package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// set via ldflags for release builds
var (
	version = "development"
	hash    = "unknown"
)

// VersionCommand is the `version` command, which prints the program version.
type VersionCommand struct{}

// Execute prints the version.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	writeVersion(os.Stdout)
	return nil
}

// writeVersion writes the version and commit hash. Builds without ldflags
// report the module version Go recorded instead, where there is one.
func writeVersion(w io.Writer) {
	v := version
	if info, ok := debug.ReadBuildInfo(); ok && v == "development" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	fmt.Fprintf(w, "blocknote %s (%s)\n", v, hash)
}
