package input

// SimpleInputProcessor processes key input, one key at a time.
//
// Processors are stacked (e.g. the focused block's processor over the global
// bindings); a processor that "captures" input, e.g. because it is in the
// middle of a key sequence or has a menu open, gets to process input before
// the processors it is stacked over.
type SimpleInputProcessor interface {
	CapturesInput() bool

	// ProcessInput processes the given key and returns whether it "applied",
	// i.E. whether the processor did something with it.
	ProcessInput(key Key) bool

	GetHelp() Help
}
