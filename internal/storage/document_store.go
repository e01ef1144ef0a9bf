package storage

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/model"
)

// DocumentStore saves and loads a document to and from a slot of a
// SlotStore, serialized as a JSON array of blocks.
type DocumentStore struct {
	store SlotStore
	slot  string
}

// NewDocumentStore returns a pointer to a new DocumentStore over the given
// slot of the given store.
func NewDocumentStore(store SlotStore, slot string) *DocumentStore {
	if slot == "" {
		slot = DefaultSlot
	}
	return &DocumentStore{
		store: store,
		slot:  slot,
	}
}

// Slot returns the name of the slot the document is stored in.
func (s *DocumentStore) Slot() string { return s.slot }

// Save stores the given document, replacing what was stored before.
func (s *DocumentStore) Save(doc model.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("could not serialize document (%w)", err)
	}
	err = s.store.Write(s.slot, data)
	if err != nil {
		return fmt.Errorf("could not write document to slot '%s' (%w)", s.slot, err)
	}
	return nil
}

// Load returns the stored document, if there is a valid one.
// Absent, unreadable, corrupt and invalid data all count as there being no
// document; the reason is logged.
func (s *DocumentStore) Load() (model.Document, bool) {
	data, exists, err := s.store.Read(s.slot)
	if err != nil {
		log.Error().Err(err).Str("slot", s.slot).Msg("could not read stored document")
		return nil, false
	}
	if !exists {
		log.Info().Str("slot", s.slot).Msg("no stored document")
		return nil, false
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		log.Error().Err(err).Str("slot", s.slot).Msg("stored document is unusable")
		return nil, false
	}
	log.Info().Str("slot", s.slot).Int("blocks", len(doc)).Msg("loaded stored document")
	return doc, true
}

// DecodeDocument parses and validates a JSON-serialized document and returns
// it with the block invariants restored (e.g. a to-do without a checked
// state is unchecked).
func DecodeDocument(data []byte) (model.Document, error) {
	var doc model.Document
	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("could not parse document (%w)", err)
	}
	err = ValidateDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid document (%w)", err)
	}
	for i := range doc {
		doc[i] = doc[i].Normalized()
	}
	return doc, nil
}
