package model

import "github.com/google/uuid"

// NewID generates a new unique block ID.
//
// It is a variable to allow deterministic IDs in tests.
var NewID = func() string {
	return uuid.NewString()
}
