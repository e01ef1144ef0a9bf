package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/blocknote/internal/control/action"
	"github.com/ja-he/blocknote/internal/input"
)

func rn(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

func TestConfigKeyspecToKeys(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		for spec, expected := range map[input.Keyspec][]input.Key{
			"":            {},
			"x":           {rn('x')},
			"gg":          {rn('g'), rn('g')},
			"<c-a>":       {{Key: tcell.KeyCtrlA}},
			"<C-A>":       {{Key: tcell.KeyCtrlA}},
			"<space>":     {rn(' ')},
			"<lt>":        {rn('<')},
			"<s-cr>":      {{Key: tcell.KeyEnter, Mod: tcell.ModShift}},
			"<s-tab>":     {{Key: tcell.KeyBacktab}},
			"<c-x>s":      {{Key: tcell.KeyCtrlX}, rn('s')},
			"a<esc><del>": {rn('a'), {Key: tcell.KeyESC}, {Key: tcell.KeyDelete}},
			"ä<pgdn>":     {rn('ä'), {Key: tcell.KeyPgDn}},
		} {
			keys, err := input.ConfigKeyspecToKeys(spec)
			if err != nil {
				t.Errorf("unexpected error for '%s': %s", spec, err.Error())
				continue
			}
			if len(keys) != len(expected) {
				t.Errorf("expected %d keys for '%s', got %d", len(expected), spec, len(keys))
				continue
			}
			for i := range keys {
				if keys[i] != expected[i] {
					t.Errorf("key %d of '%s' is %s, expected %s", i, spec, keys[i].ToDebugString(), expected[i].ToDebugString())
				}
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, spec := range []input.Keyspec{
			"<c-a",
			"c-a>",
			"<>",
			"<c-<a>",
			"<unknown>",
			"<c-h>",
			"a<",
		} {
			if _, err := input.ConfigKeyspecToKeys(spec); err == nil {
				t.Errorf("no error for '%s'", spec)
			}
		}
	})
}

func TestToConfigIdentifierString(t *testing.T) {
	for key, expected := range map[input.Key]string{
		rn('x'):                    "x",
		rn(' '):                    "<space>",
		rn('<'):                    "<lt>",
		{Key: tcell.KeyCtrlQ}:      "<c-q>",
		{Key: tcell.KeyBackspace2}: "<bs>",
		{Key: tcell.KeyEnter}:      "<cr>",
		{Key: tcell.KeyBacktab}:    "<s-tab>",
		{Key: tcell.KeyF1}:         (&input.Key{Key: tcell.KeyF1}).ToDebugString(),
	} {
		if got := input.ToConfigIdentifierString(key); got != expected {
			t.Errorf("expected '%s', got '%s'", expected, got)
		}
	}

	t.Run("round trip", func(t *testing.T) {
		spec := input.Keyspec("<c-x>a<space><lt><s-cr>")
		keys, err := input.ConfigKeyspecToKeys(spec)
		if err != nil {
			t.Fatal(err.Error())
		}
		result := ""
		for _, k := range keys {
			result += input.ToConfigIdentifierString(k)
		}
		if result != string(spec) {
			t.Errorf("'%s' came back as '%s'", spec, result)
		}
	})
}

func TestKeyFromTcellEvent(t *testing.T) {
	t.Run("rune drops modifiers", func(t *testing.T) {
		k := input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift))
		if k != rn('A') {
			t.Error("unexpected key:", k.ToDebugString())
		}
	})
	t.Run("control keeps only key", func(t *testing.T) {
		k := input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
		if (k != input.Key{Key: tcell.KeyCtrlQ}) {
			t.Error("unexpected key:", k.ToDebugString())
		}
	})
	t.Run("shift kept on non-rune", func(t *testing.T) {
		k := input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModShift|tcell.ModAlt))
		if (k != input.Key{Key: tcell.KeyEnter, Mod: tcell.ModShift}) {
			t.Error("unexpected key:", k.ToDebugString())
		}
	})
	t.Run("backspace", func(t *testing.T) {
		for _, k := range []tcell.Key{tcell.KeyBackspace, tcell.KeyBackspace2} {
			if !input.KeyFromTcellEvent(tcell.NewEventKey(k, 0, tcell.ModNone)).IsBackspace() {
				t.Error("not recognized as backspace:", tcell.KeyNames[k])
			}
		}
	})
}

type counter struct {
	counts map[string]int
}

func (c *counter) action(name string) action.Action {
	return action.NewSimple(func() string { return name }, func() { c.counts[name]++ })
}

func TestInputTree(t *testing.T) {
	newTree := func(t *testing.T) (*input.Tree, *counter) {
		t.Helper()
		c := &counter{counts: map[string]int{}}
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<c-q>":  c.action("quit"),
			"<c-x>s": c.action("save"),
			"<c-x>q": c.action("quit too"),
			"gg":     c.action("top"),
		})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		return tree, c
	}

	t.Run("single key", func(t *testing.T) {
		tree, c := newTree(t)
		if !tree.ProcessInput(input.Key{Key: tcell.KeyCtrlQ}) {
			t.Error("<c-q> not applied")
		}
		if c.counts["quit"] != 1 {
			t.Error("quit not done")
		}
		if tree.CapturesInput() {
			t.Error("captures input after completed sequence")
		}
	})

	t.Run("sequence", func(t *testing.T) {
		tree, c := newTree(t)
		if !tree.ProcessInput(input.Key{Key: tcell.KeyCtrlX}) {
			t.Error("sequence start not applied")
		}
		if !tree.CapturesInput() {
			t.Error("does not capture input during sequence")
		}
		if c.counts["save"] != 0 {
			t.Error("save done before sequence complete")
		}
		if !tree.ProcessInput(rn('s')) || c.counts["save"] != 1 {
			t.Error("save not done at end of sequence")
		}
		if tree.CapturesInput() {
			t.Error("still captures input after sequence")
		}
	})

	t.Run("broken sequence resets", func(t *testing.T) {
		tree, c := newTree(t)
		tree.ProcessInput(rn('g'))
		if tree.ProcessInput(rn('x')) {
			t.Error("key continuing no sequence applied")
		}
		if tree.CapturesInput() {
			t.Error("not reset after broken sequence")
		}
		tree.ProcessInput(rn('g'))
		tree.ProcessInput(rn('g'))
		if c.counts["top"] != 1 {
			t.Error("sequence after reset not done")
		}
	})

	t.Run("unmapped key", func(t *testing.T) {
		tree, c := newTree(t)
		if tree.ProcessInput(rn('s')) {
			t.Error("unmapped key applied")
		}
		if len(c.counts) != 0 {
			t.Error("actions done for unmapped key:", c.counts)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		tree, c := newTree(t)
		tree.ProcessInput(input.Key{Key: tcell.KeyCtrlX})
		tree.Reset()
		if tree.CapturesInput() {
			t.Error("captures input after reset")
		}
		if tree.ProcessInput(rn('s')) || c.counts["save"] != 0 {
			t.Error("sequence continued after reset")
		}
	})

	t.Run("GetHelp", func(t *testing.T) {
		tree, _ := newTree(t)
		help := tree.GetHelp()
		expected := map[string]string{
			"<c-q>":  "quit",
			"<c-x>s": "save",
			"<c-x>q": "quit too",
			"gg":     "top",
		}
		if len(help) != len(expected) {
			t.Error("unexpected help:", help)
		}
		for k, v := range expected {
			if help[k] != v {
				t.Errorf("expected help '%s' for '%s', got '%s'", v, k, help[k])
			}
		}
	})

	t.Run("construction errors", func(t *testing.T) {
		noop := action.NewSimple(func() string { return "" }, func() {})
		for name, mappings := range map[string]map[input.Keyspec]action.Action{
			"invalid keyspec": {"<c-x": noop},
			"empty keyspec":   {"": noop},
			"alias duplicate": {"<c-a>": noop, "<C-a>": noop},
			"prefix":          {"g": noop, "gg": noop},
		} {
			if _, err := input.ConstructInputTree(mappings); err == nil {
				t.Error("no error for", name)
			}
		}
	})
}
