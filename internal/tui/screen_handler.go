package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/ui"
)

// EventPollable is a source of screen events.
type EventPollable interface {
	PollEvent() tcell.Event
}

// InitializedScreen is a screen that has to be finalized before the program
// exits.
type InitializedScreen interface {
	Fini()
}

// ScreenSynchronizer can be told that the screen has to be fully redrawn on
// its next show.
type ScreenSynchronizer interface {
	NeedsSync()
}

// ScreenHandler draws to a terminal via a tcell.Screen and hands out the
// screen's events.
// After a resize, the next Show synchronizes the whole screen.
type ScreenHandler struct {
	screen    tcell.Screen
	needsSync bool
}

// NewTUIScreenHandler returns a handler for the terminal's screen.
func NewTUIScreenHandler() (*ScreenHandler, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen (%w)", err)
	}
	return NewScreenHandler(screen)
}

// NewScreenHandler initializes the given screen (e.g. a
// tcell.SimulationScreen) with mouse and paste reporting enabled and returns a
// handler for it.
func NewScreenHandler(screen tcell.Screen) (*ScreenHandler, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize screen (%w)", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.EnableMouse()
	screen.EnablePaste()
	screen.Clear()
	return &ScreenHandler{screen: screen}, nil
}

// PollEvent waits for the next event of the screen; it returns nil once the
// screen is finalized.
func (s *ScreenHandler) PollEvent() tcell.Event { return s.screen.PollEvent() }

// Fini finalizes the screen, restoring the terminal.
func (s *ScreenHandler) Fini() { s.screen.Fini() }

// NeedsSync makes the next Show redraw the whole screen, which is necessary
// after a resize.
func (s *ScreenHandler) NeedsSync() { s.needsSync = true }

// Dimensions returns the dimensions of the whole screen.
func (s *ScreenHandler) Dimensions() (x, y, w, h int) {
	w, h = s.screen.Size()
	return 0, 0, w, h
}

// ShowCursor shows the text cursor at the given location.
func (s *ScreenHandler) ShowCursor(l ui.CursorLocation) { s.screen.ShowCursor(l.X, l.Y) }

// HideCursor hides the text cursor.
func (s *ScreenHandler) HideCursor() { s.screen.HideCursor() }

// Clear clears the drawn contents; it is done before drawing anew so that
// nothing of the previous render remains.
func (s *ScreenHandler) Clear() { s.screen.Clear() }

// Show makes the drawn contents visible.
func (s *ScreenHandler) Show() {
	if !s.needsSync {
		s.screen.Show()
		return
	}
	s.needsSync = false
	s.screen.Sync()
}

// DrawText draws given text, within given dimensions in the given style.
// Text that does not fit into a row is continued on the next one; wide runes
// take up two cells and are never split across rows.
func (s *ScreenHandler) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	if w <= 0 || h <= 0 {
		return
	}

	tcellStyle := style.AsTcell()

	col := x
	row := y
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > x+w {
			row++
			col = x
			if rw > w {
				return
			}
		}
		if row >= y+h {
			return
		}
		s.screen.SetContent(col, row, r, nil, tcellStyle)
		col += rw
	}
}

// DrawBox draws a box of the given dimensions in the given style's background
// color. Note that this overwrites contents within the dimensions.
func (s *ScreenHandler) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	tcellStyle := style.AsTcell()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, tcellStyle)
		}
	}
}
