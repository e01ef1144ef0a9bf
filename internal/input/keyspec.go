package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// namedKeys are the keys that are written as "<name>" in keyspecs.
// Where several names denote the same key, the first one is used when
// describing the key.
var namedKeys = []struct {
	name string
	key  Key
}{
	{"space", Key{Key: tcell.KeyRune, Ch: ' '}},
	{"lt", Key{Key: tcell.KeyRune, Ch: '<'}},
	{"cr", Key{Key: tcell.KeyEnter}},
	{"s-cr", Key{Key: tcell.KeyEnter, Mod: tcell.ModShift}},
	{"tab", Key{Key: tcell.KeyTab}},
	{"s-tab", Key{Key: tcell.KeyBacktab}},
	{"esc", Key{Key: tcell.KeyESC}},
	{"del", Key{Key: tcell.KeyDelete}},
	{"bs", Key{Key: tcell.KeyBackspace2}},
	{"c-bs", Key{Key: tcell.KeyBackspace}},
	{"left", Key{Key: tcell.KeyLeft}},
	{"right", Key{Key: tcell.KeyRight}},
	{"up", Key{Key: tcell.KeyUp}},
	{"down", Key{Key: tcell.KeyDown}},
	{"home", Key{Key: tcell.KeyHome}},
	{"end", Key{Key: tcell.KeyEnd}},
	{"pgup", Key{Key: tcell.KeyPgUp}},
	{"pgdn", Key{Key: tcell.KeyPgDn}},
	{"c-space", Key{Key: tcell.KeyCtrlSpace}},

	// control keys tcell has no separate key for (c-h is backspace, c-i is
	// tab, c-m is enter) are left out
	{"c-a", Key{Key: tcell.KeyCtrlA}},
	{"c-b", Key{Key: tcell.KeyCtrlB}},
	{"c-c", Key{Key: tcell.KeyCtrlC}},
	{"c-d", Key{Key: tcell.KeyCtrlD}},
	{"c-e", Key{Key: tcell.KeyCtrlE}},
	{"c-f", Key{Key: tcell.KeyCtrlF}},
	{"c-g", Key{Key: tcell.KeyCtrlG}},
	{"c-j", Key{Key: tcell.KeyCtrlJ}},
	{"c-k", Key{Key: tcell.KeyCtrlK}},
	{"c-l", Key{Key: tcell.KeyCtrlL}},
	{"c-n", Key{Key: tcell.KeyCtrlN}},
	{"c-o", Key{Key: tcell.KeyCtrlO}},
	{"c-p", Key{Key: tcell.KeyCtrlP}},
	{"c-q", Key{Key: tcell.KeyCtrlQ}},
	{"c-r", Key{Key: tcell.KeyCtrlR}},
	{"c-s", Key{Key: tcell.KeyCtrlS}},
	{"c-t", Key{Key: tcell.KeyCtrlT}},
	{"c-u", Key{Key: tcell.KeyCtrlU}},
	{"c-v", Key{Key: tcell.KeyCtrlV}},
	{"c-w", Key{Key: tcell.KeyCtrlW}},
	{"c-x", Key{Key: tcell.KeyCtrlX}},
	{"c-y", Key{Key: tcell.KeyCtrlY}},
	{"c-z", Key{Key: tcell.KeyCtrlZ}},
}

var keysByName, namesByKey = func() (map[string]Key, map[Key]string) {
	byName := make(map[string]Key, len(namedKeys))
	byKey := make(map[Key]string, len(namedKeys))
	for _, named := range namedKeys {
		byName[named.name] = named.key
		if _, ok := byKey[named.key]; !ok {
			byKey[named.key] = named.name
		}
	}
	return byName, byKey
}()

// ConfigKeyspecToKeys converts a key sequence specification (e.g. "<c-x>s",
// meaning CTRL+X followed by S) to the sequence of keys it specifies.
// Plain characters stand for themselves, named keys are written in angle
// brackets (case-insensitively).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	runes := []rune(spec)
	result := make([]Key, 0, len(runes))

	for pos := 0; pos < len(runes); pos++ {
		switch runes[pos] {
		case '<':
			end := strings.IndexRune(string(runes[pos+1:]), '>')
			if end < 0 {
				return nil, fmt.Errorf("unclosed '<' (pos %d)", pos)
			}
			name := string(runes[pos+1:])[:end]
			if strings.ContainsRune(name, '<') {
				return nil, fmt.Errorf("'<' within named key (pos %d)", pos)
			}
			key, err := KeyIdentifierToKey(name)
			if err != nil {
				return nil, err
			}
			result = append(result, key)
			pos += len([]rune(name)) + 1
		case '>':
			return nil, fmt.Errorf("unopened '>' (pos %d)", pos)
		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: runes[pos]})
		}
	}

	return result, nil
}

// KeyIdentifierToKey returns the key with the given name (as written between
// angle brackets in a keyspec).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := keysByName[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no key named '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString returns the keyspec notation of the given key.
// Keys that have no notation are described in debug notation.
func ToConfigIdentifierString(k Key) string {
	if name, ok := namesByKey[k]; ok {
		return "<" + name + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return k.ToDebugString()
}
