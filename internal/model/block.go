package model

import "strings"

// BlockType is the type of a block, which determines how it is rendered and
// which fields of it are meaningful.
//
// The set of block types is closed; adding one means extending both the
// constants and BlockTypes (and thereby the lookup table) together.
type BlockType string

const (
	// BlockTypeParagraph is plain text.
	BlockTypeParagraph BlockType = "paragraph"
	// BlockTypeHeading1 is the biggest section heading.
	BlockTypeHeading1 BlockType = "heading1"
	// BlockTypeHeading2 is a medium section heading.
	BlockTypeHeading2 BlockType = "heading2"
	// BlockTypeHeading3 is the smallest section heading.
	BlockTypeHeading3 BlockType = "heading3"
	// BlockTypeTodo is a checkable to-do item; only it carries a checked state.
	BlockTypeTodo BlockType = "todo"
)

// BlockTypeInfo is the static presentation data associated with a block type.
type BlockTypeInfo struct {
	Label       string
	Description string
	Icon        string
	Placeholder string
}

// BlockTypes lists all block types in their declaration order.
// Any listing of block types (e.g., the command menu) uses this order.
var BlockTypes = []BlockType{
	BlockTypeParagraph,
	BlockTypeHeading1,
	BlockTypeHeading2,
	BlockTypeHeading3,
	BlockTypeTodo,
}

var blockTypeInfo = map[BlockType]BlockTypeInfo{
	BlockTypeParagraph: {
		Label:       "Text",
		Description: "Just start writing with plain text.",
		Icon:        "T",
		Placeholder: "Type '/' for commands...",
	},
	BlockTypeHeading1: {
		Label:       "Heading 1",
		Description: "Big section heading.",
		Icon:        "H1",
		Placeholder: "Heading 1",
	},
	BlockTypeHeading2: {
		Label:       "Heading 2",
		Description: "Medium section heading.",
		Icon:        "H2",
		Placeholder: "Heading 2",
	},
	BlockTypeHeading3: {
		Label:       "Heading 3",
		Description: "Small section heading.",
		Icon:        "H3",
		Placeholder: "Heading 3",
	},
	BlockTypeTodo: {
		Label:       "To-do list",
		Description: "Track tasks with a to-do list.",
		Icon:        "[]",
		Placeholder: "To-do",
	},
}

// Info returns the presentation data for the block type.
// Unknown types get the paragraph's data.
func (t BlockType) Info() BlockTypeInfo {
	info, ok := blockTypeInfo[t]
	if !ok {
		return blockTypeInfo[BlockTypeParagraph]
	}
	return info
}

// Block is a single, independently editable unit of a document.
//
// Checked is only ever non-nil for blocks of type BlockTypeTodo.
type Block struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
	Checked *bool     `json:"checked,omitempty"`
}

// IsChecked returns whether the block is a checked to-do.
func (b Block) IsChecked() bool {
	return b.Checked != nil && *b.Checked
}

// Normalized returns a copy of the block that satisfies the block invariants:
// a to-do always has a checked state, any other block never does, and the
// content is flat text.
func (b Block) Normalized() Block {
	if b.Type == BlockTypeTodo {
		checked := b.Checked != nil && *b.Checked
		b.Checked = &checked
	} else {
		b.Checked = nil
	}
	b.Content = SanitizeContent(b.Content)
	return b
}

// Retype returns a copy of the block with the given type.
// Retyping to a to-do yields an unchecked to-do, retyping to anything else
// clears the checked state.
func Retype(b Block, t BlockType) Block {
	b.Type = t
	if t == BlockTypeTodo {
		checked := false
		b.Checked = &checked
	} else {
		b.Checked = nil
	}
	return b
}

// SanitizeContent strips line breaks from block content, as a block's content
// is always a single flat line of text.
func SanitizeContent(content string) string {
	if !strings.ContainsAny(content, "\r\n") {
		return content
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, content)
}

// ContentLength returns the length of the block content in runes, which is
// the unit all caret offsets are given in.
func (b Block) ContentLength() int {
	return len([]rune(b.Content))
}

// NewBlock returns a new block of the given type and content with a fresh ID.
func NewBlock(t BlockType, content string) Block {
	return Retype(Block{ID: NewID(), Content: SanitizeContent(content)}, t)
}
