package model

// Document is an ordered sequence of blocks.
//
// The order of the blocks is their display and navigation order, IDs are
// unique, and a document is never empty.
//
// All operations on documents are pure: they never modify the given document
// but return a new one, leaving the given one intact. Operations referring to
// IDs that are not part of the document are no-ops.
type Document []Block

// IndexOf returns the index of the block with the given ID, or -1.
func (d Document) IndexOf(id string) int {
	for i := range d {
		if d[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the block with the given ID.
func (d Document) Get(id string) (Block, bool) {
	i := d.IndexOf(id)
	if i < 0 {
		return Block{}, false
	}
	return d[i], true
}

// Neighbor returns the ID of the block `offset` positions away from the block
// with the given ID (e.g., -1 for the previous block).
func (d Document) Neighbor(id string, offset int) (string, bool) {
	i := d.IndexOf(id)
	if i < 0 {
		return "", false
	}
	j := i + offset
	if j < 0 || j >= len(d) {
		return "", false
	}
	return d[j].ID, true
}

// IDs returns the block IDs in document order.
func (d Document) IDs() []string {
	ids := make([]string, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return ids
}

// Clone returns a copy of the document.
func (d Document) Clone() Document {
	result := make(Document, len(d))
	copy(result, d)
	for i := range result {
		if result[i].Checked != nil {
			checked := *result[i].Checked
			result[i].Checked = &checked
		}
	}
	return result
}

// InsertAfter returns a document with a new block of the given type and
// content inserted directly after the block with ID afterID, and the ID of
// the new block.
func InsertAfter(d Document, afterID string, t BlockType, content string) (Document, string) {
	i := d.IndexOf(afterID)
	if i < 0 {
		return d, ""
	}

	newBlock := NewBlock(t, content)

	result := make(Document, 0, len(d)+1)
	result = append(result, d[:i+1]...)
	result = append(result, newBlock)
	result = append(result, d[i+1:]...)
	return result, newBlock.ID
}

// Delete returns a document without the block with the given ID.
// Deleting the only block of a document does nothing.
func Delete(d Document, id string) Document {
	if len(d) <= 1 {
		return d
	}
	i := d.IndexOf(id)
	if i < 0 {
		return d
	}

	result := make(Document, 0, len(d)-1)
	result = append(result, d[:i]...)
	result = append(result, d[i+1:]...)
	return result
}

// Patch is a field-level change to a block.
// Nil fields are left unchanged.
type Patch struct {
	Type    *BlockType
	Content *string
	Checked *bool
}

// Apply applies the patch to the given block.
// A type change follows the semantics of Retype, a checked value is only
// applied to to-dos.
func (p Patch) Apply(b Block) Block {
	if p.Type != nil && *p.Type != b.Type {
		b = Retype(b, *p.Type)
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.Checked != nil && b.Type == BlockTypeTodo {
		checked := *p.Checked
		b.Checked = &checked
	}
	return b.Normalized()
}

// Update returns a document in which the block with the given ID has the
// patch applied.
func Update(d Document, id string, patch Patch) Document {
	i := d.IndexOf(id)
	if i < 0 {
		return d
	}
	result := d.Clone()
	result[i] = patch.Apply(result[i])
	return result
}

// Replace returns a document in which the block with the updated block's ID
// is replaced by (the normalized) updated block.
func Replace(d Document, updated Block) Document {
	i := d.IndexOf(updated.ID)
	if i < 0 {
		return d
	}
	result := d.Clone()
	result[i] = updated.Normalized()
	return result
}

// MergeWithPrevious returns a document in which the given trailing content is
// appended to the block preceding the block with the given ID, and that block
// is removed.
// It also returns the ID of the previous block and the join offset, i.E. the
// length of the previous block's content before the merge, which is where a
// caret should be placed.
// Merging the first block does nothing (and returns an empty ID).
func MergeWithPrevious(d Document, id string, trailing string) (Document, string, int) {
	i := d.IndexOf(id)
	if i <= 0 {
		return d, "", 0
	}

	prev := d[i-1]
	joinOffset := prev.ContentLength()
	prev.Content = SanitizeContent(prev.Content + trailing)

	result := make(Document, 0, len(d)-1)
	result = append(result, d[:i-1]...)
	result = append(result, prev)
	result = append(result, d[i+1:]...)
	return result.Clone(), prev.ID, joinOffset
}

// SplitAt splits the given content at the given (rune) caret offset.
// The offset is clamped to the content.
func SplitAt(content string, caret int) (before, after string) {
	runes := []rune(content)
	if caret < 0 {
		caret = 0
	}
	if caret > len(runes) {
		caret = len(runes)
	}
	return string(runes[:caret]), string(runes[caret:])
}

// Reorder returns a document in which the block with ID movedID has been
// moved to the index the block with ID targetID occupied before, i.E. an
// array move from the one index to the other.
func Reorder(d Document, movedID string, targetID string) Document {
	if movedID == targetID {
		return d
	}
	from := d.IndexOf(movedID)
	to := d.IndexOf(targetID)
	if from < 0 || to < 0 {
		return d
	}

	moved := d[from]
	result := make(Document, 0, len(d))
	result = append(result, d[:from]...)
	result = append(result, d[from+1:]...)
	result = append(result[:to], append(Document{moved}, result[to:]...)...)
	return result.Clone()
}

// ToggleChecked returns a document in which the checked state of the to-do
// with the given ID is flipped.
// For blocks that are not to-dos this does nothing.
func ToggleChecked(d Document, id string) Document {
	i := d.IndexOf(id)
	if i < 0 || d[i].Type != BlockTypeTodo {
		return d
	}
	result := d.Clone()
	checked := !result[i].IsChecked()
	result[i].Checked = &checked
	return result
}
