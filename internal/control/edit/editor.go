// Package edit implements the editing of a document's blocks (by the user):
// how input on a block's editing surface turns into document operations and
// where the caret ends up afterwards.
package edit

import (
	"github.com/ja-he/blocknote/internal/model"
)

// Surface is the focusable editing surface of a block.
//
// Caret offsets are given in runes; setting an offset clamps it to the
// surface's content.
type Surface interface {
	GetContent() string
	SetContent(content string)

	CaretOffset() int
	SetCaretOffset(offset int)
}

// TextEditor is a Surface that also supports ordinary in-place editing.
type TextEditor interface {
	Surface

	AddRune(r rune)
	InsertString(s string)
	BackspaceRune()
	DeleteRune()
	BackspaceToBeginning()
	MoveCursorLeft()
	MoveCursorRight()
	MoveCursorToBeginning()
	MoveCursorToEnd()
	MoveCursorPrevWordBeginning()
	MoveCursorNextWordEnd()
}

// DocumentOperations are the document-level operations that editing of a
// block can result in.
// Focus requests do not take effect immediately but once the target block's
// surface is available, i.E. after the next render.
type DocumentOperations interface {
	Block(id string) (model.Block, bool)

	UpdateBlock(block model.Block)
	PatchBlock(id string, patch model.Patch)
	AddBlock(afterID string, t model.BlockType, content string) string
	DeleteBlock(id string)
	MergeWithPrevious(id string, trailing string)

	Focus(id string, offset int)
	FocusNext(id string)
	FocusPrev(id string)
}
