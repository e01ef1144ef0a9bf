package cli

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ja-he/blocknote/internal/config"
	"github.com/ja-he/blocknote/internal/control"
	"github.com/ja-he/blocknote/internal/storage"
	"github.com/ja-he/blocknote/internal/storage/providers"
)

const sqliteDatabaseFilename = "blocknote.db"

// envDataFromEnvironment determines the environment data, i.E. the blocknote
// home directory, which is '$BLOCKNOTE_HOME' or '$HOME/.config/blocknote'.
func envDataFromEnvironment() control.EnvData {
	var envData control.EnvData
	blocknoteHome := os.Getenv("BLOCKNOTE_HOME")
	if blocknoteHome == "" {
		envData.BaseDirPath = os.Getenv("HOME") + "/.config/blocknote"
	} else {
		envData.BaseDirPath = strings.TrimRight(blocknoteHome, "/")
	}
	return envData
}

func themeFromString(theme string) config.ColorschemeType {
	switch theme {
	case "light":
		return config.Light
	case "dark":
		return config.Dark
	default:
		return config.Dark
	}
}

// loadConfig loads the 'config.yaml' in the blocknote home directory.
func loadConfig(envData control.EnvData, theme config.ColorschemeType) (config.Config, error) {
	return config.Load(path.Join(envData.BaseDirPath, "config.yaml"), theme)
}

// storagePath returns the configured storage path, resolved relative to the
// blocknote home directory.
func storagePath(envData control.EnvData, storageConfig config.Storage) string {
	if filepath.IsAbs(storageConfig.Path) {
		return storageConfig.Path
	}
	return path.Join(envData.BaseDirPath, storageConfig.Path)
}

// openSlotStore opens the configured storage backend.
func openSlotStore(envData control.EnvData, storageConfig config.Storage) (storage.SlotStore, error) {
	basePath := storagePath(envData, storageConfig)
	switch storageConfig.Backend {
	case config.StorageBackendFiles:
		store, err := providers.NewFilesSlotStore(basePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageBackendSQLite:
		err := os.MkdirAll(basePath, 0755)
		if err != nil {
			return nil, fmt.Errorf("could not create storage directory '%s' (%w)", basePath, err)
		}
		store, err := providers.OpenSQLiteSlotStore(path.Join(basePath, sqliteDatabaseFilename))
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend '%s'", storageConfig.Backend)
	}
}

// openDocumentStore opens the configured storage backend and returns the
// store for the given slot (the configured one if empty), along with the
// slot store, which is to be closed by the caller.
func openDocumentStore(envData control.EnvData, storageConfig config.Storage, slot string) (*storage.DocumentStore, storage.SlotStore, error) {
	if slot == "" {
		slot = storageConfig.Slot
	}
	if err := config.ValidateSlot(slot); err != nil {
		return nil, nil, fmt.Errorf("invalid slot '%s' (%w)", slot, err)
	}
	slotStore, err := openSlotStore(envData, storageConfig)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewDocumentStore(slotStore, slot), slotStore, nil
}
