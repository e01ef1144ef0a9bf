package ui

// PositionInfo describes a position in the user interface.
//
// Retrievers should check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is information about a position that is on no
// meaningful pane.
type NoPanePositionInfo struct{}

// DocumentPanePositionInfo provides information on a position in the
// document pane.
type DocumentPanePositionInfo struct {
	// BlockID is the ID of the block at the position, "" if there is none.
	BlockID string
	Part    BlockPart
	// Offset is the caret offset in the block's content closest to the
	// position, if Part is BlockContent.
	Offset int
}

// SlashMenuPanePositionInfo provides information on a position in the
// command menu.
type SlashMenuPanePositionInfo struct {
	// Index is the index of the menu entry at the position, -1 if there is
	// none.
	Index int
}

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}

// BlockPart is the part of a drawn block at a position.
type BlockPart int

const (
	_ BlockPart = iota
	// BlockNowhere is not part of any block.
	BlockNowhere
	// BlockDeleteControl is the gutter control that deletes the block.
	BlockDeleteControl
	// BlockAddControl is the gutter control that adds a block below.
	BlockAddControl
	// BlockHandle is the gutter handle by which the block is dragged.
	BlockHandle
	// BlockCheckbox is the checkbox of a to-do.
	BlockCheckbox
	// BlockContent is the block's text (or where it would be).
	BlockContent
)

func (p BlockPart) String() string {
	switch p {
	case BlockNowhere:
		return "nowhere"
	case BlockDeleteControl:
		return "delete-control"
	case BlockAddControl:
		return "add-control"
	case BlockHandle:
		return "handle"
	case BlockCheckbox:
		return "checkbox"
	case BlockContent:
		return "content"
	}
	return "[unknown block part]"
}
