package control

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/control/edit"
	"github.com/ja-he/blocknote/internal/model"
)

// focusRequest is a request to focus a block's surface and place the caret.
// A negative offset places the caret at the end of the content.
type focusRequest struct {
	id     string
	offset int
}

const caretAtEnd = -1

// DocumentController owns the live document.
//
// All mutations of the document go through the controller, which replaces
// its snapshot with the result of a model operation and notifies its change
// listeners of the new snapshot. Snapshots are never modified after they are
// published.
//
// Focus changes are deferred: a focus request is only applied by FlushFocus,
// which is to be called after the surfaces have been (re-)registered, i.E.
// after rendering, so that requests targeting a block created by the same
// input can be satisfied.
type DocumentController struct {
	mtx sync.RWMutex

	doc model.Document

	surfaces     map[string]edit.Surface
	focusedID    string
	pendingFocus *focusRequest

	changeListeners []func(model.Document)
}

// NewDocumentController returns a pointer to a new controller for the given
// initial document.
func NewDocumentController(initial model.Document) *DocumentController {
	return &DocumentController{
		doc:      initial,
		surfaces: map[string]edit.Surface{},
	}
}

// OnChange registers a listener to be called with every new snapshot.
// Listeners are called synchronously, after the controller's lock has been
// released.
func (c *DocumentController) OnChange(listener func(model.Document)) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.changeListeners = append(c.changeListeners, listener)
}

// Document returns the current snapshot of the document.
func (c *DocumentController) Document() model.Document {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.doc
}

// Block returns the current state of the block with the given ID.
func (c *DocumentController) Block(id string) (model.Block, bool) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.doc.Get(id)
}

// FocusedID returns the ID of the focused block, or "" if there is none.
func (c *DocumentController) FocusedID() string {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.focusedID
}

// apply replaces the snapshot with the result of the given operation and
// notifies the listeners if it resulted in a new snapshot.
func (c *DocumentController) apply(op func(model.Document) model.Document) {
	c.mtx.Lock()
	before := c.doc
	after := op(before)
	changed := !sameSnapshot(before, after)
	if changed {
		c.doc = after
	}
	listeners := c.changeListeners
	c.mtx.Unlock()

	if changed {
		for _, l := range listeners {
			l(after)
		}
	}
}

// AddBlock inserts a new block of the given type and content after the block
// with ID afterID and returns the new block's ID ("" if afterID is unknown).
func (c *DocumentController) AddBlock(afterID string, t model.BlockType, content string) string {
	var newID string
	c.apply(func(d model.Document) model.Document {
		var result model.Document
		result, newID = model.InsertAfter(d, afterID, t, content)
		return result
	})
	if newID != "" {
		log.Debug().Str("after", afterID).Str("id", newID).Str("type", string(t)).Msg("added block")
	}
	return newID
}

// DeleteBlock removes the block with the given ID, unless it is the only one.
func (c *DocumentController) DeleteBlock(id string) {
	c.apply(func(d model.Document) model.Document { return model.Delete(d, id) })
}

// UpdateBlock replaces the block with the given block's ID by it.
func (c *DocumentController) UpdateBlock(block model.Block) {
	c.apply(func(d model.Document) model.Document { return model.Replace(d, block) })
}

// PatchBlock applies the given patch to the block with the given ID.
func (c *DocumentController) PatchBlock(id string, patch model.Patch) {
	c.apply(func(d model.Document) model.Document { return model.Update(d, id, patch) })
}

// MergeWithPrevious appends the given trailing content to the block before
// the block with the given ID, removes that block, and requests focus on the
// previous block at the point where the contents were joined.
// Does nothing for the first block.
func (c *DocumentController) MergeWithPrevious(id string, trailing string) {
	var prevID string
	var joinOffset int
	c.apply(func(d model.Document) model.Document {
		var result model.Document
		result, prevID, joinOffset = model.MergeWithPrevious(d, id, trailing)
		return result
	})
	if prevID != "" {
		c.Focus(prevID, joinOffset)
	}
}

// Reorder moves the block with ID movedID to the position of the block with
// ID targetID.
func (c *DocumentController) Reorder(movedID string, targetID string) {
	c.apply(func(d model.Document) model.Document { return model.Reorder(d, movedID, targetID) })
}

// MoveBlock moves the block with the given ID by the given offset (e.g. -1
// to swap it with its predecessor), if there is a block at that offset.
func (c *DocumentController) MoveBlock(id string, offset int) {
	targetID, ok := c.Document().Neighbor(id, offset)
	if !ok {
		return
	}
	c.Reorder(id, targetID)
}

// ToggleChecked flips the checked state of the to-do with the given ID.
func (c *DocumentController) ToggleChecked(id string) {
	c.apply(func(d model.Document) model.Document { return model.ToggleChecked(d, id) })
}

// Replace replaces the whole document, e.g. by one that was loaded.
// Empty documents are ignored.
func (c *DocumentController) Replace(doc model.Document) {
	if len(doc) == 0 {
		log.Warn().Msg("not replacing document with empty document")
		return
	}
	c.apply(func(model.Document) model.Document { return doc.Clone() })
}

// Register registers the editing surface of the block with the given ID,
// making it available as a focus target.
func (c *DocumentController) Register(id string, surface edit.Surface) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.surfaces[id] = surface
}

// Unregister removes the editing surface of the block with the given ID.
func (c *DocumentController) Unregister(id string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	delete(c.surfaces, id)
}

// Focus requests focus on the block with the given ID, with the caret at the
// given offset.
func (c *DocumentController) Focus(id string, offset int) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if offset < 0 {
		offset = 0
	}
	c.pendingFocus = &focusRequest{id: id, offset: offset}
}

// FocusNext requests focus on the block after the block with the given ID,
// with the caret at its end.
func (c *DocumentController) FocusNext(id string) {
	c.focusNeighbor(id, +1)
}

// FocusPrev requests focus on the block before the block with the given ID,
// with the caret at its end.
func (c *DocumentController) FocusPrev(id string) {
	c.focusNeighbor(id, -1)
}

func (c *DocumentController) focusNeighbor(id string, offset int) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	targetID, ok := c.doc.Neighbor(id, offset)
	if !ok {
		return
	}
	c.pendingFocus = &focusRequest{id: targetID, offset: caretAtEnd}
}

// FlushFocus applies the pending focus request, if any.
// A request for a block without a registered surface is dropped. If no
// request is pending and the focused block is no longer part of the
// document, the first block is focused.
// Returns whether focus or caret were changed.
func (c *DocumentController) FlushFocus() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	request := c.pendingFocus
	c.pendingFocus = nil

	if request == nil {
		if c.doc.IndexOf(c.focusedID) >= 0 || len(c.doc) == 0 {
			return false
		}
		request = &focusRequest{id: c.doc[0].ID, offset: 0}
	}

	surface, ok := c.surfaces[request.id]
	if !ok {
		log.Debug().Str("block", request.id).Msg("dropping focus request for block without surface")
		return false
	}
	c.focusedID = request.id
	if request.offset == caretAtEnd {
		surface.SetCaretOffset(len([]rune(surface.GetContent())))
	} else {
		surface.SetCaretOffset(request.offset)
	}
	return true
}

// sameSnapshot returns whether the operation returned the very snapshot it was
// given, which is how the model signals a no-op.
func sameSnapshot(a, b model.Document) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
