package model

// SeedDocument returns the example document an editor starts out with before
// (and unless) a stored document is loaded.
func SeedDocument() Document {
	todo := func(content string, checked bool) Block {
		b := NewBlock(BlockTypeTodo, content)
		b.Checked = &checked
		return b
	}
	return Document{
		NewBlock(BlockTypeHeading1, "Welcome to the Block Editor"),
		NewBlock(BlockTypeParagraph, "This is a Notion-style block editor. Each block is editable and you can change its type using slash commands."),
		NewBlock(BlockTypeHeading2, "Getting Started"),
		NewBlock(BlockTypeParagraph, "Click the + in the gutter of a block to add a new block below, drag the :: handle to move it."),
		NewBlock(BlockTypeHeading3, "Slash Commands"),
		NewBlock(BlockTypeParagraph, "Type / anywhere to open the command menu and change the block type."),
		todo("Try adding a new block", false),
		todo("Convert a block using slash commands", false),
		todo("Drag blocks to reorder them", true),
	}
}
