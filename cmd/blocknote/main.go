package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/control/cli"
)

func main() {
	// subcommands (such as edit) may replace the stderr logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error:\n > %s\n", err.Error())
		os.Exit(1)
	}

	// without a command, the version flag prints the version and anything
	// else opens the editor
	if parser.Active != nil {
		return
	}
	var cmd flags.Commander = &cli.Opts.EditCommand
	if cli.Opts.Version {
		cmd = &cli.Opts.VersionCommand
	}
	if err := cmd.Execute(nil); err != nil {
		fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
		os.Exit(1)
	}
}
