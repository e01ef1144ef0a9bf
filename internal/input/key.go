package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key input, as it is processed by input processors.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// ToDebugString returns a string representation of the key for debugging.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d),mod:%d)",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
		int(k.Mod),
	)
}

// IsRune returns whether the key is the given rune.
func (k Key) IsRune(r rune) bool {
	return k.Key == tcell.KeyRune && k.Ch == r
}

// IsBackspace returns whether the key is a backspace. Terminals differ in
// which of the two backspace keys they send, so both count.
func (k Key) IsBackspace() bool {
	return k.Key == tcell.KeyBackspace || k.Key == tcell.KeyBackspace2
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
//
// Modifiers are dropped except for shift on non-rune keys (so that e.g.
// <s-cr> can be told apart from <cr>); the control modifier is already part
// of the tcell key for control sequences.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key(), Mod: e.Modifiers() & tcell.ModShift}
}
