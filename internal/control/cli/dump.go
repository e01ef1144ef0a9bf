package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/config"
	"github.com/ja-he/blocknote/internal/storage"
)

// DumpCommand holds the flags for the `dump` command line command, which
// prints the stored document.
type DumpCommand struct {
	Format string `short:"f" long:"format" choice:"markdown" choice:"json" default:"markdown" description:"the format to print the document in"`
	Slot   string `short:"s" long:"slot" description:"the storage slot of the document to print (overrides config.yaml)" value-name:"<slot>"`
}

// Execute executes the dump command.
// (This gets called by `go-flags` when `dump` is provided on the command
// line)
func (command *DumpCommand) Execute(args []string) error {
	envData := envDataFromEnvironment()

	configData, err := loadConfig(envData, config.Dark)
	if err != nil {
		return fmt.Errorf("can't load config (%w)", err)
	}

	store, slotStore, err := openDocumentStore(envData, configData.Storage, command.Slot)
	if err != nil {
		return fmt.Errorf("can't open storage (%w)", err)
	}
	defer slotStore.Close()

	doc, ok := store.Load()
	if !ok {
		return fmt.Errorf("no (usable) document in slot '%s'", store.Slot())
	}
	log.Debug().Int("blocks", len(doc)).Str("format", command.Format).Msg("dumping document")

	switch command.Format {
	case "json":
		out, err := storage.EncodeJSON(doc)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		fmt.Print(storage.EncodeMarkdown(doc))
	}
	return nil
}
