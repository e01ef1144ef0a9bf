package editors

import (
	"strconv"
)

// BlockEditor is the editing surface for a single block's content.
// It holds the content currently being edited and a caret (cursor) position,
// which is given in runes and is always within [0, len(content)], i.E. it may
// sit past the last rune.
type BlockEditor struct {
	ID string

	content   string
	cursorPos int
}

// NewBlockEditor returns a new editor for the block with the given ID and
// content, with the caret at the beginning.
func NewBlockEditor(id string, content string) *BlockEditor {
	return &BlockEditor{
		ID:      id,
		content: content,
	}
}

// GetContent returns the current (edited) contents.
func (e *BlockEditor) GetContent() string { return e.content }

// SetContent replaces the contents, clamping the caret into the new content.
func (e *BlockEditor) SetContent(content string) {
	e.content = content
	e.SetCaretOffset(e.cursorPos)
}

// GetCursorPos returns the current cursor position in the string, 0 being
// before the first character.
func (e *BlockEditor) GetCursorPos() int { return e.cursorPos }

// CaretOffset returns the caret offset in runes.
func (e *BlockEditor) CaretOffset() int { return e.cursorPos }

// SetCaretOffset places the caret at the given offset, clamped to the
// content.
func (e *BlockEditor) SetCaretOffset(offset int) {
	switch {
	case offset < 0:
		e.cursorPos = 0
	case offset > e.length():
		e.cursorPos = e.length()
	default:
		e.cursorPos = offset
	}
}

func (e *BlockEditor) length() int { return len([]rune(e.content)) }

// DeleteRune deletes the rune at the cursor position.
func (e *BlockEditor) DeleteRune() {
	tmpStr := []rune(e.content)
	if e.cursorPos < len(tmpStr) {
		preCursor := tmpStr[:e.cursorPos]
		postCursor := tmpStr[e.cursorPos+1:]

		e.content = string(append(preCursor, postCursor...))
	}
}

// BackspaceRune deletes the rune before the cursor position.
func (e *BlockEditor) BackspaceRune() {
	if e.cursorPos > 0 {
		tmpStr := []rune(e.content)
		preCursor := tmpStr[:e.cursorPos-1]
		postCursor := tmpStr[e.cursorPos:]

		e.content = string(append(preCursor, postCursor...))
		e.cursorPos--
	}
}

// BackspaceToBeginning deletes all runes before the cursor position.
func (e *BlockEditor) BackspaceToBeginning() {
	e.content = string([]rune(e.content)[e.cursorPos:])
	e.cursorPos = 0
}

// MoveCursorToBeginning moves the cursor to the beginning of the string.
func (e *BlockEditor) MoveCursorToBeginning() {
	e.cursorPos = 0
}

// MoveCursorToEnd moves the cursor past the last rune of the string.
func (e *BlockEditor) MoveCursorToEnd() {
	e.cursorPos = e.length()
}

// MoveCursorLeft moves the cursor one rune to the left.
func (e *BlockEditor) MoveCursorLeft() {
	if e.cursorPos > 0 {
		e.cursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right.
func (e *BlockEditor) MoveCursorRight() {
	if e.cursorPos < e.length() {
		e.cursorPos++
	}
}

// MoveCursorPrevWordBeginning moves the cursor to the beginning of the
// current or previous word.
func (e *BlockEditor) MoveCursorPrevWordBeginning() {
	beforeCursor := []rune(e.content)[:e.cursorPos]
	i := len(beforeCursor)
	for i > 0 && beforeCursor[i-1] == ' ' {
		i--
	}
	for i > 0 && beforeCursor[i-1] != ' ' {
		i--
	}
	e.cursorPos = i
}

// MoveCursorNextWordEnd moves the cursor past the end of the current or next
// word.
func (e *BlockEditor) MoveCursorNextWordEnd() {
	runes := []rune(e.content)
	i := e.cursorPos
	for i < len(runes) && runes[i] == ' ' {
		i++
	}
	for i < len(runes) && runes[i] != ' ' {
		i++
	}
	e.cursorPos = i
}

// AddRune adds a rune at the cursor position.
// Non-printable runes (which includes line breaks) are ignored.
func (e *BlockEditor) AddRune(newRune rune) {
	if strconv.IsPrint(newRune) {
		tmpStr := []rune(e.content)
		cursorPos := e.cursorPos
		if len(tmpStr) == cursorPos {
			tmpStr = append(tmpStr, newRune)
		} else {
			tmpStr = append(tmpStr[:cursorPos+1], tmpStr[cursorPos:]...)
			tmpStr[cursorPos] = newRune
		}
		e.content = string(tmpStr)
		e.cursorPos++
	}
}

// InsertString inserts the given text at the cursor position, rune by rune,
// so that anything AddRune would drop (such as line breaks) is dropped.
func (e *BlockEditor) InsertString(s string) {
	for _, r := range s {
		e.AddRune(r)
	}
}
