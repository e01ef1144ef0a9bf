package ui

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// CursorLocation is a location of the text cursor.
type CursorLocation struct {
	X int
	Y int
}

// TextCursorController offers control of a text cursor, such as a terminal's.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

type cursorRequest struct {
	requesterID string
	location    CursorLocation
}

// CursorWrangler collects requests to place the terminal cursor and enacts
// the most recent one.
// Requests stand until their requester deletes them, so when the most recent
// request is deleted, the one before it is enacted again.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	// ordered from oldest to most recent, at most one per requester
	requests []cursorRequest
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{cc: controller}
}

// Put requests the cursor at the given location, replacing the requester's
// previous request (if any) and making it the most recent one.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	w.requests = append(w.without(requesterID), cursorRequest{requesterID: requesterID, location: l})
}

// Delete withdraws the requester's request.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	remaining := w.without(requesterID)
	if len(remaining) == len(w.requests) {
		log.Trace().Str("requester", requesterID).Msg("no cursor request to delete")
	}
	w.requests = remaining
}

func (w *CursorWrangler) without(requesterID string) []cursorRequest {
	result := make([]cursorRequest, 0, len(w.requests)+1)
	for _, r := range w.requests {
		if r.requesterID != requesterID {
			result = append(result, r)
		}
	}
	return result
}

// Location returns the location of the most recent request, if there is one.
func (w *CursorWrangler) Location() (CursorLocation, bool) {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if len(w.requests) == 0 {
		return CursorLocation{}, false
	}
	return w.requests[len(w.requests)-1].location, true
}

// Enact shows the cursor at the most recently requested location or hides it
// if there is no request.
func (w *CursorWrangler) Enact() {
	if l, ok := w.Location(); ok {
		w.cc.ShowCursor(l)
	} else {
		w.cc.HideCursor()
	}
}
