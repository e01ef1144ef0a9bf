package edit

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/control/action"
	"github.com/ja-he/blocknote/internal/control/edit/slash"
	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/input/processors"
	"github.com/ja-he/blocknote/internal/model"
)

// BlockInputProcessor processes the input for a single block's editing
// surface.
//
// Input that changes the document's structure (splitting, merging, deleting
// blocks, moving between them, converting the block through the command
// menu) is turned into document operations, everything else edits the
// surface in place and is then committed to the block.
// Implements input.SimpleInputProcessor.
type BlockInputProcessor struct {
	blockID string
	editor  TextEditor
	ops     DocumentOperations

	menu slash.Menu
	text *processors.TextInputProcessor
}

// NewBlockInputProcessor returns a pointer to a new processor for input to
// the block with the given ID, edited via the given editor.
func NewBlockInputProcessor(blockID string, editor TextEditor, ops DocumentOperations) (*BlockInputProcessor, error) {
	p := &BlockInputProcessor{
		blockID: blockID,
		editor:  editor,
		ops:     ops,
	}

	simple := func(explanation string, f func()) action.Action {
		return action.NewSimple(func() string { return explanation }, f)
	}
	text, err := processors.NewTextInputProcessor(
		map[input.Keyspec]action.Action{
			"<bs>":    simple("delete rune before caret (or merge with previous block)", editor.BackspaceRune),
			"<c-bs>":  simple("delete rune before caret (or merge with previous block)", editor.BackspaceRune),
			"<del>":   simple("delete rune at caret", editor.DeleteRune),
			"<c-u>":   simple("delete to beginning", editor.BackspaceToBeginning),
			"<left>":  simple("move caret left", editor.MoveCursorLeft),
			"<right>": simple("move caret right", editor.MoveCursorRight),
			"<home>":  simple("move caret to beginning", editor.MoveCursorToBeginning),
			"<c-a>":   simple("move caret to beginning", editor.MoveCursorToBeginning),
			"<end>":   simple("move caret to end", editor.MoveCursorToEnd),
			"<c-e>":   simple("move caret to end", editor.MoveCursorToEnd),
			"<up>":    simple("move caret to beginning (or to previous block)", editor.MoveCursorToBeginning),
			"<down>":  simple("move caret to end (or to next block)", editor.MoveCursorToEnd),
			"<c-b>":   simple("move caret to previous word", editor.MoveCursorPrevWordBeginning),
			"<c-f>":   simple("move caret past next word", editor.MoveCursorNextWordEnd),
		},
		editor.AddRune,
	)
	if err != nil {
		return nil, fmt.Errorf("could not construct text input processor for block '%s' (%w)", blockID, err)
	}
	p.text = text

	return p, nil
}

// BlockID returns the ID of the block this processor edits.
func (p *BlockInputProcessor) BlockID() string { return p.blockID }

// Menu returns the block's command menu.
func (p *BlockInputProcessor) Menu() *slash.Menu { return &p.menu }

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
// A block captures input only while its command menu is open.
func (p *BlockInputProcessor) CapturesInput() bool {
	return p.menu.IsOpen()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *BlockInputProcessor) ProcessInput(key input.Key) bool {
	content := p.editor.GetContent()
	caret := p.editor.CaretOffset()

	switch {

	case key.IsRune('/') && !p.menu.IsOpen():
		p.menu.Open(caret)
		p.editor.AddRune('/')
		p.commit()
		p.menu.Sync(p.editor.GetContent(), p.editor.CaretOffset())
		return true

	case p.menu.IsOpen() && isMenuKey(key):
		p.processMenuInput(key)
		return true

	case key.Key == tcell.KeyEnter && key.Mod&tcell.ModShift != 0:
		// block content is a single line, so there is nothing to insert
		return true

	case key.Key == tcell.KeyEnter:
		p.split(content, caret)
		return true

	case key.IsBackspace() && content == "":
		p.ops.FocusPrev(p.blockID)
		p.ops.DeleteBlock(p.blockID)
		return true

	case key.IsBackspace() && caret == 0:
		p.ops.MergeWithPrevious(p.blockID, content)
		return true

	case key.Key == tcell.KeyUp && caret == 0:
		p.ops.FocusPrev(p.blockID)
		return true

	case key.Key == tcell.KeyDown && caret == len([]rune(content)):
		p.ops.FocusNext(p.blockID)
		return true

	}

	if !p.text.ProcessInput(key) {
		return false
	}
	p.commit()
	p.menu.Sync(p.editor.GetContent(), p.editor.CaretOffset())
	return true
}

// InsertText inserts the given (e.g., pasted) text at the caret.
// Line breaks are dropped, as block content is a single line.
func (p *BlockInputProcessor) InsertText(text string) {
	p.editor.InsertString(text)
	p.commit()
	p.menu.Sync(p.editor.GetContent(), p.editor.CaretOffset())
}

// SelectType converts the block to the given type via the command menu,
// removing the '/' and the filter text from the content and placing the
// caret where the '/' was.
func (p *BlockInputProcessor) SelectType(t model.BlockType) {
	if !p.menu.IsOpen() {
		return
	}
	block, ok := p.ops.Block(p.blockID)
	if !ok {
		p.menu.Close()
		return
	}
	block.Content = p.editor.GetContent()
	updated, caret := slash.Apply(block, t, p.menu.SlashStart(), p.editor.CaretOffset())
	p.menu.Close()

	log.Debug().Str("block", p.blockID).Str("type", string(t)).Msg("converting block via menu")
	p.editor.SetContent(updated.Content)
	p.editor.SetCaretOffset(caret)
	p.ops.PatchBlock(p.blockID, model.Patch{Type: &updated.Type, Content: &updated.Content, Checked: updated.Checked})
	p.ops.Focus(p.blockID, caret)
}

// CloseMenu closes the block's command menu, if it is open.
func (p *BlockInputProcessor) CloseMenu() {
	p.menu.Close()
}

// GetHelp returns the input help map for this processor.
func (p *BlockInputProcessor) GetHelp() input.Help {
	if p.menu.IsOpen() {
		return input.Help{
			"<up>":   "select previous block type",
			"<down>": "select next block type",
			"<cr>":   "convert block to selected type",
			"<esc>":  "close menu",
		}
	}
	result := p.text.GetHelp()
	result["/"] = "open block menu"
	result["<cr>"] = "split block at caret"
	return result
}

func (p *BlockInputProcessor) processMenuInput(key input.Key) {
	switch key.Key {
	case tcell.KeyUp:
		p.menu.Up()
	case tcell.KeyDown:
		p.menu.Down()
	case tcell.KeyEnter:
		if t, ok := p.menu.Selection(); ok {
			p.SelectType(t)
		}
	case tcell.KeyESC:
		p.menu.Close()
	}
}

func (p *BlockInputProcessor) split(content string, caret int) {
	block, ok := p.ops.Block(p.blockID)
	if !ok {
		return
	}
	before, after := model.SplitAt(content, caret)
	p.editor.SetContent(before)
	block.Content = before
	p.ops.UpdateBlock(block)

	newID := p.ops.AddBlock(p.blockID, model.BlockTypeParagraph, after)
	if newID != "" {
		p.ops.Focus(newID, 0)
	}
}

// commit writes the surface's content to the block, if it differs.
func (p *BlockInputProcessor) commit() {
	block, ok := p.ops.Block(p.blockID)
	if !ok {
		log.Warn().Str("block", p.blockID).Msg("editing block that is not part of the document")
		return
	}
	content := p.editor.GetContent()
	if block.Content == content {
		return
	}
	p.ops.PatchBlock(p.blockID, model.Patch{Content: &content})
}

func isMenuKey(key input.Key) bool {
	switch key.Key {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyEnter, tcell.KeyESC:
		return true
	default:
		return false
	}
}
