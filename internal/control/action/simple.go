package action

// Simple is an Action that calls a func() when done.
type Simple struct {
	do      func()
	explain func() string
}

// Do calls the action's function.
func (a *Simple) Do() { a.do() }

// Explain returns the current explanation.
func (a *Simple) Explain() string { return a.explain() }

// NewSimple returns a pointer to a new simple action, explained by the given
// explainer and calling the given function when done.
func NewSimple(explainer func() string, do func()) *Simple {
	return &Simple{
		do:      do,
		explain: explainer,
	}
}
