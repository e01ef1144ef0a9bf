package storage

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ja-he/blocknote/internal/model"
)

// ValidateDocument checks that a document is usable: it has blocks, each of
// them has an ID and a known type, and no ID occurs twice.
func ValidateDocument(doc model.Document) error {
	if err := validation.Validate([]model.Block(doc), validation.Required); err != nil {
		return fmt.Errorf("document: %w", err)
	}

	seen := make(map[string]bool, len(doc))
	for i := range doc {
		if err := validateBlock(&doc[i]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if seen[doc[i].ID] {
			return fmt.Errorf("block %d: duplicate id '%s'", i, doc[i].ID)
		}
		seen[doc[i].ID] = true
	}
	return nil
}

func validateBlock(b *model.Block) error {
	knownTypes := make([]interface{}, len(model.BlockTypes))
	for i, t := range model.BlockTypes {
		knownTypes[i] = t
	}
	return validation.ValidateStruct(b,
		validation.Field(&b.ID, validation.Required),
		validation.Field(&b.Type, validation.Required, validation.In(knownTypes...)),
	)
}
