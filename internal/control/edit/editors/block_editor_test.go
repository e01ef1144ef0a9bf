package editors_test

import (
	"testing"

	"github.com/ja-he/blocknote/internal/control/edit/editors"
)

func TestBlockEditor(t *testing.T) {

	t.Run("caret clamps", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "grüße")
		e.SetCaretOffset(99)
		if e.CaretOffset() != 5 {
			t.Error("caret not clamped to (rune) length but at", e.CaretOffset())
		}
		e.SetCaretOffset(-3)
		if e.CaretOffset() != 0 {
			t.Error("caret not clamped to 0 but at", e.CaretOffset())
		}
		e.SetCaretOffset(5)
		e.SetContent("ab")
		if e.CaretOffset() != 2 {
			t.Error("caret not clamped into new content but at", e.CaretOffset())
		}
	})

	t.Run("AddRune", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "Hllo")
		e.SetCaretOffset(1)
		e.AddRune('e')
		if e.GetContent() != "Hello" || e.CaretOffset() != 2 {
			t.Errorf("unexpected state after insert: '%s' at %d", e.GetContent(), e.CaretOffset())
		}
		e.MoveCursorToEnd()
		e.AddRune('!')
		if e.GetContent() != "Hello!" || e.CaretOffset() != 6 {
			t.Errorf("unexpected state after append: '%s' at %d", e.GetContent(), e.CaretOffset())
		}
		e.AddRune('\n')
		if e.GetContent() != "Hello!" {
			t.Error("line break was inserted")
		}
	})

	t.Run("InsertString", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "ab")
		e.SetCaretOffset(1)
		e.InsertString("x\ny\r\n")
		if e.GetContent() != "axyb" || e.CaretOffset() != 3 {
			t.Errorf("unexpected state after paste: '%s' at %d", e.GetContent(), e.CaretOffset())
		}
	})

	t.Run("BackspaceRune", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "abc")
		e.BackspaceRune()
		if e.GetContent() != "abc" || e.CaretOffset() != 0 {
			t.Error("backspace at beginning changed something")
		}
		e.MoveCursorToEnd()
		e.BackspaceRune()
		if e.GetContent() != "ab" || e.CaretOffset() != 2 {
			t.Errorf("unexpected state after backspace: '%s' at %d", e.GetContent(), e.CaretOffset())
		}
	})

	t.Run("DeleteRune", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "abc")
		e.DeleteRune()
		if e.GetContent() != "bc" || e.CaretOffset() != 0 {
			t.Errorf("unexpected state after delete: '%s' at %d", e.GetContent(), e.CaretOffset())
		}
		e.MoveCursorToEnd()
		e.DeleteRune()
		if e.GetContent() != "bc" {
			t.Error("delete at end changed something")
		}
	})

	t.Run("BackspaceToBeginning", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "hello world")
		e.SetCaretOffset(6)
		e.BackspaceToBeginning()
		if e.GetContent() != "world" || e.CaretOffset() != 0 {
			t.Errorf("unexpected state: '%s' at %d", e.GetContent(), e.CaretOffset())
		}
	})

	t.Run("cursor movement", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "ab")
		e.MoveCursorLeft()
		if e.CaretOffset() != 0 {
			t.Error("moved left of beginning")
		}
		e.MoveCursorRight()
		e.MoveCursorRight()
		e.MoveCursorRight()
		if e.CaretOffset() != 2 {
			t.Error("caret not stopped after last rune but at", e.CaretOffset())
		}
		e.MoveCursorToBeginning()
		if e.CaretOffset() != 0 {
			t.Error("caret not at beginning")
		}
	})

	t.Run("word movement", func(t *testing.T) {
		e := editors.NewBlockEditor("b", "one two  three")
		e.MoveCursorNextWordEnd()
		if e.CaretOffset() != 3 {
			t.Error("expected caret after 'one', got", e.CaretOffset())
		}
		e.MoveCursorNextWordEnd()
		if e.CaretOffset() != 7 {
			t.Error("expected caret after 'two', got", e.CaretOffset())
		}
		e.MoveCursorToEnd()
		e.MoveCursorPrevWordBeginning()
		if e.CaretOffset() != 9 {
			t.Error("expected caret before 'three', got", e.CaretOffset())
		}
		e.MoveCursorPrevWordBeginning()
		if e.CaretOffset() != 4 {
			t.Error("expected caret before 'two', got", e.CaretOffset())
		}
	})
}
