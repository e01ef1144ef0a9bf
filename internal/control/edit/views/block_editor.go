package views

// BlockEditorView allows inspection of a block editor.
type BlockEditorView interface {

	// GetCursorPos returns the current cursor position in the string, 0 being
	// before the first character.
	GetCursorPos() int

	// GetContent returns the current (edited) contents.
	GetContent() string
}
