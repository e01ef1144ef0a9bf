package action

// OnBlock is an Action that applies an operation to whichever block is the
// target when it is done (usually the focused block).
// If there is no target block, doing it does nothing.
type OnBlock struct {
	explanation string
	target      func() string
	op          func(blockID string)
}

// Do applies the operation to the current target block.
func (a *OnBlock) Do() {
	id := a.target()
	if id == "" {
		return
	}
	a.op(id)
}

// Explain returns the action's explanation.
func (a *OnBlock) Explain() string { return a.explanation }

// NewOnBlock returns a pointer to a new action that applies the given
// operation to the block with the ID returned by target.
func NewOnBlock(explanation string, target func() string, op func(blockID string)) *OnBlock {
	return &OnBlock{
		explanation: explanation,
		target:      target,
		op:          op,
	}
}
