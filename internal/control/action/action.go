// Package action provides the actions that input can be mapped to.
package action

// Action is something that can be done in response to input.
//
// There is no undo; every action takes effect as soon as it is done.
type Action interface {
	Do()

	// Explain returns a short description of what Do does, as shown in the
	// help.
	Explain() string
}
