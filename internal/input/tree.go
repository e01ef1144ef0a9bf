package input

import (
	"fmt"

	"github.com/ja-he/blocknote/internal/control/action"
)

// Tree is a processor for key sequences, each of which ends in an action.
// Sequences sharing a prefix share the path from the root, e.g.
//
//	"<c-x>s" -> save     <c-x>
//	"<c-x>q" -> quit       +-s    -> save
//	"<c-q>"  -> quit       +-q    -> quit
//	                     <c-q>    -> quit
//
// While a sequence is partially entered, the tree captures input.
type Tree struct {
	root    *node
	current *node
}

// node is either an inner node with children or a leaf with an action.
type node struct {
	children map[Key]*node
	action   action.Action
}

func newNode() *node {
	return &node{children: map[Key]*node{}}
}

// ProcessInput advances along the entered sequence and does the action at its
// end. A key that continues no sequence resets the tree and does not apply.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next, ok := t.current.children[k]
	switch {
	case !ok:
		t.current = t.root
		return false
	case next.action != nil:
		t.current = t.root
		next.action.Do()
		return true
	default:
		t.current = next
		return true
	}
}

// CapturesInput returns whether a sequence is partially entered.
func (t *Tree) CapturesInput() bool {
	return t.current != t.root
}

// Reset abandons a partially entered sequence.
func (t *Tree) Reset() {
	t.current = t.root
}

// ConstructInputTree constructs a Tree for the given mappings of key sequence
// specifications to actions.
// It is an error for a sequence to be invalid, to be given more than once
// (e.g. via aliases) or to be a prefix of another sequence, as the longer
// sequence could never be entered.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := newNode()

	for keyspec, a := range spec {
		sequence, err := ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("invalid keyspec '%s' (%w)", keyspec, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec")
		}

		current := root
		for i, key := range sequence {
			last := i == len(sequence)-1
			next, exists := current.children[key]
			switch {
			case exists && (last || next.action != nil):
				return nil, fmt.Errorf("keyspec '%s' conflicts with another mapping", keyspec)
			case exists:
				current = next
			case last:
				current.children[key] = &node{action: a}
			default:
				next = newNode()
				current.children[key] = next
				current = next
			}
		}
	}

	return &Tree{
		root:    root,
		current: root,
	}, nil
}
