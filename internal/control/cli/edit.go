package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/potatolog"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/tui"
)

// EditCommand holds the flags for the `edit` command line command, which
// opens the document in the TUI editor.
type EditCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	Slot          string `short:"s" long:"slot" description:"the storage slot of the document to edit (overrides config.yaml)" value-name:"<slot>"`
}

// Execute executes the edit command.
// (This gets called by `go-flags` when `edit` is provided on the command
// line)
func (command *EditCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	envData := envDataFromEnvironment()

	configData, err := loadConfig(envData, themeFromString(command.Theme))
	if err != nil {
		return fmt.Errorf("can't load config (%w)", err)
	}
	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	store, slotStore, err := openDocumentStore(envData, configData.Storage, command.Slot)
	if err != nil {
		return fmt.Errorf("can't open storage (%w)", err)
	}
	defer slotStore.Close()

	renderer, err := tui.NewTUIScreenHandler()
	if err != nil {
		return fmt.Errorf("can't initialize screen (%w)", err)
	}

	controller, err := NewController(envData, configData, *stylesheet, store, renderer)
	if err != nil {
		renderer.Fini()
		return fmt.Errorf("can't set up editor (%w)", err)
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	err = controller.Run()

	log.Logger = stderrLogger
	return err
}
