package processors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/blocknote/internal/control/action"
	"github.com/ja-he/blocknote/internal/input"
)

// TextInputProcessor processes input for a text field.
// Runes go to its rune callback (which would typically insert them at the
// caret), other keys are looked up in its mappings of single keys to
// actions, e.g. for moving the caret or deleting.
// Implements input.SimpleInputProcessor.
type TextInputProcessor struct {
	mappings     map[input.Key]action.Action
	runeCallback func(r rune)
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor.
// Every keyspec must denote exactly one non-rune key and no two keyspecs may
// denote the same key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	p := &TextInputProcessor{
		mappings:     make(map[input.Key]action.Action, len(mappings)),
		runeCallback: runeCallback,
	}
	for spec, a := range mappings {
		keys, err := input.ConfigKeyspecToKeys(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid keyspec '%s' (%w)", spec, err)
		}
		switch {
		case len(keys) != 1:
			return nil, fmt.Errorf("keyspec '%s' does not denote a single key (but %d)", spec, len(keys))
		case keys[0].Key == tcell.KeyRune:
			return nil, fmt.Errorf("keyspec '%s' denotes a rune, which would be inserted as text", spec)
		}
		if _, taken := p.mappings[keys[0]]; taken {
			return nil, fmt.Errorf("keyspec '%s' denotes a key that is already mapped", spec)
		}
		p.mappings[keys[0]] = a
	}
	return p, nil
}

// ProcessInput hands runes to the rune callback and does the action mapped
// to any other key.
// Returns whether the key was used.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if key.Key == tcell.KeyRune {
		p.runeCallback(key.Ch)
		return true
	}
	a, ok := p.mappings[key]
	if !ok && key.Mod != tcell.ModNone {
		// e.g. shift+left moves like left unless bound itself
		a, ok = p.mappings[input.Key{Key: key.Key}]
	}
	if !ok {
		return false
	}
	a.Do()
	return true
}

// CapturesInput always returns true, as text input has no partial sequences
// that could be interrupted, and keys it does not use should not reach
// anything else while it is in use.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the help for the mapped keys.
// Keys whose actions have the same explanation are listed together.
func (p *TextInputProcessor) GetHelp() input.Help {
	keysByExplanation := map[string][]string{}
	for k, a := range p.mappings {
		explanation := a.Explain()
		keysByExplanation[explanation] = append(keysByExplanation[explanation], input.ToConfigIdentifierString(k))
	}

	result := input.Help{}
	for explanation, keys := range keysByExplanation {
		sort.Strings(keys)
		result[strings.Join(keys, ", ")] = explanation
	}
	return result
}
