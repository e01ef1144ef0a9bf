package edit

// MouseEditState is the state of an ongoing mouse edit.
type MouseEditState int

const (
	_ MouseEditState = iota
	// MouseEditStateNone means no mouse edit is in progress.
	MouseEditStateNone
	// MouseEditStateDragging means a block is being dragged by its handle.
	MouseEditStateDragging
)
