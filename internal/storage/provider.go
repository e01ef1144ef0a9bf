// Package storage implements the persistence of documents.
//
// Documents are stored in named slots of a SlotStore, which can be
// implemented over various storage systems (see package providers).
package storage

// SlotStore is the abstracted storage backend: a set of named slots, each
// holding an opaque blob of data.
//
// Implementations must be safe for concurrent use.
type SlotStore interface {
	// Read returns the data in the given slot, and whether the slot exists.
	Read(slot string) (data []byte, exists bool, err error)

	// Write replaces the data in the given slot.
	Write(slot string, data []byte) error

	// Close releases the resources held by the store.
	Close() error
}

// DefaultSlot is the slot the document is stored in, unless configured
// otherwise.
const DefaultSlot = "editor-blocks"
