package ui_test

import (
	"testing"

	"github.com/ja-he/blocknote/internal/ui"
)

type fakeCursorController struct {
	shown    bool
	location ui.CursorLocation
}

func (c *fakeCursorController) HideCursor() { c.shown = false }
func (c *fakeCursorController) ShowCursor(l ui.CursorLocation) {
	c.shown = true
	c.location = l
}

func TestCursorWrangler(t *testing.T) {
	a := ui.CursorLocation{X: 1, Y: 2}
	b := ui.CursorLocation{X: 3, Y: 4}

	t.Run("no request hides cursor", func(t *testing.T) {
		c := &fakeCursorController{shown: true}
		ui.NewCursorWrangler(c).Enact()
		if c.shown {
			t.Error("cursor shown without request")
		}
	})

	t.Run("most recent request wins", func(t *testing.T) {
		c := &fakeCursorController{}
		w := ui.NewCursorWrangler(c)
		w.Put(a, "first")
		w.Put(b, "second")
		w.Enact()
		if !c.shown || c.location != b {
			t.Error("expected cursor at", b, "got", c.location, c.shown)
		}

		w.Put(a, "first")
		w.Enact()
		if c.location != a {
			t.Error("renewed request did not become most recent")
		}
	})

	t.Run("earlier request reappears on delete", func(t *testing.T) {
		c := &fakeCursorController{}
		w := ui.NewCursorWrangler(c)
		w.Put(a, "first")
		w.Put(b, "second")
		w.Delete("second")
		w.Enact()
		if !c.shown || c.location != a {
			t.Error("expected standing request at", a, "got", c.location, c.shown)
		}

		w.Delete("first")
		w.Enact()
		if c.shown {
			t.Error("cursor shown after all requests were deleted")
		}
	})

	t.Run("deleting unknown requester is harmless", func(t *testing.T) {
		w := ui.NewCursorWrangler(&fakeCursorController{})
		w.Put(a, "first")
		w.Delete("other")
		if l, ok := w.Location(); !ok || l != a {
			t.Error("request lost on unrelated delete")
		}
	})
}
