package edit_test

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/blocknote/internal/control"
	"github.com/ja-he/blocknote/internal/control/edit"
	"github.com/ja-he/blocknote/internal/control/edit/editors"
	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/model"
)

var (
	keyEnter     = input.Key{Key: tcell.KeyEnter}
	keyBackspace = input.Key{Key: tcell.KeyBackspace2}
	keyUp        = input.Key{Key: tcell.KeyUp}
	keyDown      = input.Key{Key: tcell.KeyDown}
	keyLeft      = input.Key{Key: tcell.KeyLeft}
	keyEsc       = input.Key{Key: tcell.KeyESC}
)

// harness mimics what the document pane does on each render: it maintains
// one editor and processor per block, keeps the surfaces registered and
// flushes the focus afterwards.
type harness struct {
	t          *testing.T
	ctrl       *control.DocumentController
	editors    map[string]*editors.BlockEditor
	processors map[string]*edit.BlockInputProcessor
}

func newHarness(t *testing.T, doc model.Document) *harness {
	h := &harness{
		t:          t,
		ctrl:       control.NewDocumentController(doc),
		editors:    map[string]*editors.BlockEditor{},
		processors: map[string]*edit.BlockInputProcessor{},
	}
	h.render()
	return h
}

func (h *harness) render() {
	h.t.Helper()
	present := map[string]bool{}
	for _, b := range h.ctrl.Document() {
		present[b.ID] = true
		e, ok := h.editors[b.ID]
		if !ok {
			e = editors.NewBlockEditor(b.ID, b.Content)
			p, err := edit.NewBlockInputProcessor(b.ID, e, h.ctrl)
			if err != nil {
				h.t.Fatal("could not construct processor:", err.Error())
			}
			h.editors[b.ID] = e
			h.processors[b.ID] = p
			h.ctrl.Register(b.ID, e)
		} else if e.GetContent() != b.Content {
			e.SetContent(b.Content)
		}
	}
	for id := range h.editors {
		if !present[id] {
			delete(h.editors, id)
			delete(h.processors, id)
			h.ctrl.Unregister(id)
		}
	}
	h.ctrl.FlushFocus()
}

func (h *harness) focus(id string, offset int) {
	h.ctrl.Focus(id, offset)
	h.render()
}

func (h *harness) key(k input.Key) {
	h.t.Helper()
	p, ok := h.processors[h.ctrl.FocusedID()]
	if !ok {
		h.t.Fatal("no processor for focused block", h.ctrl.FocusedID())
	}
	p.ProcessInput(k)
	h.render()
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		h.key(input.Key{Key: tcell.KeyRune, Ch: r})
	}
}

func (h *harness) expectFocus(id string, offset int) {
	h.t.Helper()
	if h.ctrl.FocusedID() != id {
		h.t.Fatalf("expected focus on '%s', but it is on '%s'", id, h.ctrl.FocusedID())
	}
	if caret := h.editors[id].CaretOffset(); caret != offset {
		h.t.Errorf("expected caret at %d, but it is at %d", offset, caret)
	}
}

func (h *harness) focusedMenuOpen() bool {
	return h.processors[h.ctrl.FocusedID()].Menu().IsOpen()
}

func contentsOf(d model.Document) []string {
	result := make([]string, len(d))
	for i := range d {
		result[i] = d[i].Content
	}
	return result
}

func TestEnter(t *testing.T) {
	t.Run("at end splits off empty paragraph", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "h", Type: model.BlockTypeHeading1, Content: "Welcome"}})
		h.focus("h", 7)
		h.key(keyEnter)

		doc := h.ctrl.Document()
		if len(doc) != 2 {
			t.Fatal("expected two blocks, got", len(doc))
		}
		if doc[0] != (model.Block{ID: "h", Type: model.BlockTypeHeading1, Content: "Welcome"}) {
			t.Error("first block changed:", doc[0])
		}
		if doc[1].Type != model.BlockTypeParagraph || doc[1].Content != "" {
			t.Error("unexpected new block:", doc[1])
		}
		h.expectFocus(doc[1].ID, 0)
	})

	t.Run("in the middle splits content", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: "HelloWorld"}})
		h.focus("p", 5)
		h.key(keyEnter)

		doc := h.ctrl.Document()
		if !reflect.DeepEqual(contentsOf(doc), []string{"Hello", "World"}) {
			t.Error("unexpected contents after split:", contentsOf(doc))
		}
		h.expectFocus(doc[1].ID, 0)
	})

	t.Run("with shift does nothing", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: "ab"}})
		h.focus("p", 1)
		h.key(input.Key{Key: tcell.KeyEnter, Mod: tcell.ModShift})
		if !reflect.DeepEqual(contentsOf(h.ctrl.Document()), []string{"ab"}) {
			t.Error("shift-enter changed the document:", contentsOf(h.ctrl.Document()))
		}
	})
}

func TestBackspace(t *testing.T) {
	t.Run("at caret 0 merges with previous", func(t *testing.T) {
		h := newHarness(t, model.Document{
			{ID: "a", Type: model.BlockTypeParagraph, Content: "Hello"},
			{ID: "b", Type: model.BlockTypeParagraph, Content: "World"},
		})
		h.focus("b", 0)
		h.key(keyBackspace)

		if !reflect.DeepEqual(contentsOf(h.ctrl.Document()), []string{"HelloWorld"}) {
			t.Error("unexpected contents after merge:", contentsOf(h.ctrl.Document()))
		}
		h.expectFocus("a", 5)
	})

	t.Run("at caret 0 of first block does nothing", func(t *testing.T) {
		h := newHarness(t, model.Document{
			{ID: "a", Type: model.BlockTypeParagraph, Content: "Hello"},
			{ID: "b", Type: model.BlockTypeParagraph, Content: "World"},
		})
		h.focus("a", 0)
		h.key(keyBackspace)
		if !reflect.DeepEqual(contentsOf(h.ctrl.Document()), []string{"Hello", "World"}) {
			t.Error("document changed:", contentsOf(h.ctrl.Document()))
		}
		h.expectFocus("a", 0)
	})

	t.Run("on empty block deletes it", func(t *testing.T) {
		h := newHarness(t, model.Document{
			{ID: "a", Type: model.BlockTypeParagraph, Content: "Hello"},
			{ID: "b", Type: model.BlockTypeHeading2, Content: ""},
		})
		h.focus("b", 0)
		h.key(keyBackspace)

		if !reflect.DeepEqual(h.ctrl.Document().IDs(), []string{"a"}) {
			t.Error("empty block not deleted:", h.ctrl.Document().IDs())
		}
		h.expectFocus("a", 5)
	})

	t.Run("on sole empty block does nothing", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "a", Type: model.BlockTypeParagraph, Content: ""}})
		h.focus("a", 0)
		h.key(keyBackspace)
		if len(h.ctrl.Document()) != 1 {
			t.Error("sole block was deleted")
		}
		h.expectFocus("a", 0)
	})

	t.Run("elsewhere edits in place", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "a", Type: model.BlockTypeParagraph, Content: "Hello"}})
		h.focus("a", 5)
		h.key(keyBackspace)
		if h.ctrl.Document()[0].Content != "Hell" {
			t.Errorf("unexpected content '%s'", h.ctrl.Document()[0].Content)
		}
		h.expectFocus("a", 4)
	})
}

func TestArrows(t *testing.T) {
	doc := model.Document{
		{ID: "a", Type: model.BlockTypeParagraph, Content: "first"},
		{ID: "b", Type: model.BlockTypeParagraph, Content: "second"},
		{ID: "c", Type: model.BlockTypeParagraph, Content: "third"},
	}

	t.Run("up at caret 0 focuses end of previous", func(t *testing.T) {
		h := newHarness(t, doc)
		h.focus("b", 0)
		h.key(keyUp)
		h.expectFocus("a", 5)
	})

	t.Run("up elsewhere moves caret to beginning", func(t *testing.T) {
		h := newHarness(t, doc)
		h.focus("b", 3)
		h.key(keyUp)
		h.expectFocus("b", 0)
	})

	t.Run("down at end focuses end of next", func(t *testing.T) {
		h := newHarness(t, doc)
		h.focus("b", 6)
		h.key(keyDown)
		h.expectFocus("c", 5)
	})

	t.Run("down elsewhere moves caret to end", func(t *testing.T) {
		h := newHarness(t, doc)
		h.focus("b", 2)
		h.key(keyDown)
		h.expectFocus("b", 6)
	})

	t.Run("at document boundaries nothing happens", func(t *testing.T) {
		h := newHarness(t, doc)
		h.focus("a", 0)
		h.key(keyUp)
		h.expectFocus("a", 0)
		h.focus("c", 5)
		h.key(keyDown)
		h.expectFocus("c", 5)
	})
}

func TestSlashMenu(t *testing.T) {
	t.Run("selecting to-do", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: ""}})
		h.focus("p", 0)
		h.typeText("/tod")
		if !h.focusedMenuOpen() {
			t.Fatal("menu not open after typing '/tod'")
		}
		if h.ctrl.Document()[0].Content != "/tod" {
			t.Errorf("unexpected content while filtering: '%s'", h.ctrl.Document()[0].Content)
		}
		h.key(keyEnter)

		b := h.ctrl.Document()[0]
		if b.Type != model.BlockTypeTodo || b.Content != "" || b.Checked == nil || *b.Checked {
			t.Errorf("unexpected block after selection: %+v", b)
		}
		if h.focusedMenuOpen() {
			t.Error("menu still open after selection")
		}
		if len(h.ctrl.Document()) != 1 {
			t.Error("selection split the block")
		}
		h.expectFocus("p", 0)
	})

	t.Run("retyping a checked to-do", func(t *testing.T) {
		tru := true
		for selection, expected := range map[string]model.BlockType{
			"/todo": model.BlockTypeTodo,
			"/text": model.BlockTypeParagraph,
		} {
			h := newHarness(t, model.Document{{ID: "t", Type: model.BlockTypeTodo, Content: "x", Checked: &tru}})
			h.focus("t", 1)
			h.typeText(selection)
			h.key(keyEnter)

			b := h.ctrl.Document()[0]
			if b.Type != expected || b.Content != "x" {
				t.Errorf("unexpected block after selecting '%s': %+v", selection, b)
			}
			if b.IsChecked() {
				t.Errorf("block still checked after selecting '%s'", selection)
			}
			if expected != model.BlockTypeTodo && b.Checked != nil {
				t.Errorf("non-to-do has a checked state after selecting '%s'", selection)
			}
		}
	})

	t.Run("selecting with arrows keeps surrounding text", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: "ab"}})
		h.focus("p", 1)
		h.typeText("/head")
		h.key(keyDown)
		h.key(keyEnter)

		b := h.ctrl.Document()[0]
		if b.Type != model.BlockTypeHeading2 || b.Content != "ab" {
			t.Errorf("unexpected block after selection: %+v", b)
		}
		h.expectFocus("p", 1)
	})

	t.Run("escape closes and keeps text", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: ""}})
		h.focus("p", 0)
		h.typeText("/h")
		h.key(keyEsc)
		if h.focusedMenuOpen() {
			t.Error("menu still open after escape")
		}
		if h.ctrl.Document()[0].Content != "/h" || h.ctrl.Document()[0].Type != model.BlockTypeParagraph {
			t.Errorf("unexpected block after escape: %+v", h.ctrl.Document()[0])
		}
		h.key(keyEnter)
		if len(h.ctrl.Document()) != 2 {
			t.Error("enter after closing menu did not split")
		}
	})

	t.Run("enter without matches does nothing", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: ""}})
		h.focus("p", 0)
		h.typeText("/xyz")
		if len(h.processors["p"].Menu().Matches()) != 0 {
			t.Fatal("unexpected matches for 'xyz'")
		}
		h.key(keyEnter)
		if len(h.ctrl.Document()) != 1 || h.ctrl.Document()[0].Content != "/xyz" {
			t.Error("enter without matches changed the document:", contentsOf(h.ctrl.Document()))
		}
		if !h.focusedMenuOpen() {
			t.Error("enter without matches closed the menu")
		}
	})

	t.Run("caret leaving closes menu", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: ""}})
		h.focus("p", 0)
		h.typeText("/t")
		h.key(keyLeft)
		if !h.focusedMenuOpen() || h.processors["p"].Menu().Filter() != "" {
			t.Error("menu should be open with empty filter with caret right after '/'")
		}
		h.key(keyLeft)
		if h.focusedMenuOpen() {
			t.Error("menu still open with caret at slash start")
		}
	})

	t.Run("deleting the slash closes menu", func(t *testing.T) {
		h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: "x"}})
		h.focus("p", 1)
		h.typeText("/")
		h.key(keyBackspace)
		if h.focusedMenuOpen() {
			t.Error("menu still open after deleting '/'")
		}
		if h.ctrl.Document()[0].Content != "x" {
			t.Errorf("unexpected content '%s'", h.ctrl.Document()[0].Content)
		}
	})
}

func TestInsertText(t *testing.T) {
	h := newHarness(t, model.Document{{ID: "p", Type: model.BlockTypeParagraph, Content: "ab"}})
	h.focus("p", 1)
	h.processors["p"].InsertText("one\ntwo")
	h.render()
	if h.ctrl.Document()[0].Content != "aonetwob" {
		t.Errorf("unexpected content after paste '%s'", h.ctrl.Document()[0].Content)
	}
	h.expectFocus("p", 7)
}
