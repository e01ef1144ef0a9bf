package control

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/control/edit"
	"github.com/ja-he/blocknote/internal/control/edit/editors"
	"github.com/ja-he/blocknote/internal/model"
)

// BlockSurfaces keeps an editing surface (editor and input processor) for
// every block of the document and keeps them registered with the document
// controller as focus targets.
type BlockSurfaces struct {
	mtx sync.RWMutex

	controller *DocumentController

	editors    map[string]*editors.BlockEditor
	processors map[string]*edit.BlockInputProcessor
}

// NewBlockSurfaces returns a pointer to a new, empty set of surfaces for the
// given controller's document.
func NewBlockSurfaces(controller *DocumentController) *BlockSurfaces {
	return &BlockSurfaces{
		controller: controller,
		editors:    map[string]*editors.BlockEditor{},
		processors: map[string]*edit.BlockInputProcessor{},
	}
}

// Mount brings the surfaces in line with the given document: blocks without
// a surface get one, surfaces of blocks no longer present are removed, and
// surfaces whose content differs from their block's (e.g. after a merge or a
// load) are updated.
func (s *BlockSurfaces) Mount(doc model.Document) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	present := make(map[string]bool, len(doc))
	for _, b := range doc {
		present[b.ID] = true

		e, ok := s.editors[b.ID]
		if ok {
			if e.GetContent() != b.Content {
				e.SetContent(b.Content)
			}
			continue
		}

		e = editors.NewBlockEditor(b.ID, b.Content)
		p, err := edit.NewBlockInputProcessor(b.ID, e, s.controller)
		if err != nil {
			log.Error().Err(err).Str("block", b.ID).Msg("could not create surface for block")
			continue
		}
		s.editors[b.ID] = e
		s.processors[b.ID] = p
		s.controller.Register(b.ID, e)
	}

	for id := range s.editors {
		if !present[id] {
			delete(s.editors, id)
			delete(s.processors, id)
			s.controller.Unregister(id)
		}
	}
}

// Editor returns the editor of the block with the given ID.
func (s *BlockSurfaces) Editor(id string) (*editors.BlockEditor, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	e, ok := s.editors[id]
	return e, ok
}

// Processor returns the input processor of the block with the given ID.
func (s *BlockSurfaces) Processor(id string) (*edit.BlockInputProcessor, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	p, ok := s.processors[id]
	return p, ok
}

// Focused returns the input processor of the focused block, if any.
func (s *BlockSurfaces) Focused() (*edit.BlockInputProcessor, bool) {
	return s.Processor(s.controller.FocusedID())
}

// CloseMenusExcept closes the command menus of all blocks but the one with
// the given ID, so that at most one menu is ever open.
func (s *BlockSurfaces) CloseMenusExcept(id string) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	for blockID, p := range s.processors {
		if blockID != id {
			p.CloseMenu()
		}
	}
}
