package providers

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sync"
)

// FilesSlotStore stores each slot in its own file in a base directory.
// Implements storage.SlotStore.
type FilesSlotStore struct {
	BasePath string

	mutex sync.RWMutex
}

// NewFilesSlotStore returns a pointer to a new FilesSlotStore in the given
// directory, which is created if it does not exist.
func NewFilesSlotStore(basePath string) (*FilesSlotStore, error) {
	err := os.MkdirAll(basePath, 0755)
	if err != nil {
		return nil, fmt.Errorf("could not create storage directory '%s' (%w)", basePath, err)
	}
	return &FilesSlotStore{
		BasePath: basePath,
	}, nil
}

// Filename returns the name of the file the given slot is stored in.
func (p *FilesSlotStore) Filename(slot string) string {
	return path.Join(p.BasePath, slot+".json")
}

// Read returns the data in the given slot, and whether the slot exists.
func (p *FilesSlotStore) Read(slot string) ([]byte, bool, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	data, err := os.ReadFile(p.Filename(slot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("could not read file '%s' (%w)", p.Filename(slot), err)
	}
	return data, true, nil
}

// Write replaces the data in the given slot.
// The data is written to a temporary file first, which then replaces the
// slot's file, so that a failed write does not destroy the previous data.
func (p *FilesSlotStore) Write(slot string, data []byte) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	filename := p.Filename(slot)
	f, err := os.CreateTemp(p.BasePath, "."+slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for '%s' (%w)", filename, err)
	}
	tmpName := f.Name()

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not write temporary file for '%s' (%w)", filename, err)
	}

	err = os.Rename(tmpName, filename)
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace file '%s' (%w)", filename, err)
	}
	return nil
}

// Close does nothing, as no files are held open.
func (p *FilesSlotStore) Close() error { return nil }
