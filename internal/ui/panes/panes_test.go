package panes_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/blocknote/internal/config"
	"github.com/ja-he/blocknote/internal/control/edit/editors"
	"github.com/ja-he/blocknote/internal/control/edit/slash"
	"github.com/ja-he/blocknote/internal/control/edit/views"
	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/model"
	"github.com/ja-he/blocknote/internal/storage"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/tui"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/ui/panes"
)

type recordingCursorHandler struct {
	location *ui.CursorLocation
}

func (h *recordingCursorHandler) Put(l ui.CursorLocation, requesterID string) { h.location = &l }
func (h *recordingCursorHandler) Delete(requesterID string)                   { h.location = nil }

func newSimulatedHandler(t *testing.T, w, h int) (*tui.ScreenHandler, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	handler, err := tui.NewScreenHandler(screen)
	if err != nil {
		t.Fatal("could not initialize simulated screen:", err.Error())
	}
	screen.SetSize(w, h)
	t.Cleanup(handler.Fini)
	return handler, screen
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cells, w, _ := screen.GetContents()
	result := ""
	for col := 0; col < w; col++ {
		runes := cells[row*w+col].Runes
		if len(runes) == 0 {
			result += " "
			continue
		}
		result += string(runes[0])
	}
	return result
}

func testStylesheet() styling.Stylesheet {
	return *styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
}

type documentPaneSetup struct {
	pane    *panes.DocumentPane
	screen  tcell.SimulationScreen
	handler *tui.ScreenHandler
	editors map[string]*editors.BlockEditor
	cursor  *recordingCursorHandler
	focused string
}

func newDocumentPaneSetup(t *testing.T, doc model.Document, focused string) *documentPaneSetup {
	t.Helper()
	handler, screen := newSimulatedHandler(t, 40, 10)
	dims := func() (x, y, w, h int) { return 0, 0, 40, 10 }

	s := &documentPaneSetup{
		screen:  screen,
		handler: handler,
		editors: map[string]*editors.BlockEditor{},
		cursor:  &recordingCursorHandler{},
		focused: focused,
	}
	for _, b := range doc {
		s.editors[b.ID] = editors.NewBlockEditor(b.ID, b.Content)
	}
	s.pane = panes.NewDocumentPane(
		ui.NewConstrainedRenderer(handler, dims),
		dims,
		testStylesheet(),
		func() model.Document { return doc },
		func() string { return s.focused },
		func(id string) (views.BlockEditorView, bool) {
			e, ok := s.editors[id]
			if !ok {
				return nil, false
			}
			return e, true
		},
		func() (input.SimpleInputProcessor, bool) { return nil, false },
		func() (string, string) { return "", "" },
		s.cursor,
	)
	return s
}

func (s *documentPaneSetup) draw() {
	s.pane.Draw()
	s.handler.Show()
}

func TestDocumentPane(t *testing.T) {
	doc := model.Document{
		{ID: "a", Type: model.BlockTypeParagraph, Content: "Hello"},
		model.Retype(model.Block{ID: "b"}, model.BlockTypeTodo),
		{ID: "c", Type: model.BlockTypeParagraph},
	}

	t.Run("gutter and content", func(t *testing.T) {
		s := newDocumentPaneSetup(t, doc, "a")
		s.draw()
		row := rowText(s.screen, 0)
		if row[1] != 'x' || row[3] != '+' || row[5:7] != "::" {
			t.Errorf("unexpected gutter: '%s'", row)
		}
		if !strings.HasPrefix(row[8:], "Hello") {
			t.Errorf("content not drawn after gutter: '%s'", row)
		}
	})

	t.Run("to-do checkbox and placeholders", func(t *testing.T) {
		s := newDocumentPaneSetup(t, doc, "a")
		s.draw()
		todoRow := rowText(s.screen, 1)
		if !strings.HasPrefix(todoRow[8:], "[ ] To-do") {
			t.Errorf("unexpected to-do row: '%s'", todoRow)
		}
		paragraphRow := rowText(s.screen, 2)
		if strings.TrimSpace(paragraphRow[8:]) != "" {
			t.Errorf("unfocused empty paragraph shows placeholder: '%s'", paragraphRow)
		}

		s.focused = "c"
		s.draw()
		paragraphRow = rowText(s.screen, 2)
		if !strings.HasPrefix(paragraphRow[8:], model.BlockTypeParagraph.Info().Placeholder) {
			t.Errorf("focused empty paragraph shows no placeholder: '%s'", paragraphRow)
		}
	})

	t.Run("caret", func(t *testing.T) {
		s := newDocumentPaneSetup(t, doc, "a")
		s.editors["a"].SetCaretOffset(2)
		s.draw()
		l, ok := s.pane.CaretLocation()
		if !ok || l.X != 10 || l.Y != 0 {
			t.Error("unexpected caret location:", l, ok)
		}
		if s.cursor.location == nil || *s.cursor.location != l {
			t.Error("cursor not requested at caret:", s.cursor.location)
		}

		s.focused = "b"
		s.draw()
		l, _ = s.pane.CaretLocation()
		if l.X != 12 || l.Y != 1 {
			t.Error("caret of to-do not after checkbox:", l)
		}
	})

	t.Run("position info", func(t *testing.T) {
		s := newDocumentPaneSetup(t, doc, "a")
		s.draw()
		for _, tc := range []struct {
			x, y   int
			id     string
			part   ui.BlockPart
			offset int
		}{
			{1, 0, "a", ui.BlockDeleteControl, 0},
			{3, 0, "a", ui.BlockAddControl, 0},
			{5, 0, "a", ui.BlockHandle, 0},
			{6, 0, "a", ui.BlockHandle, 0},
			{12, 0, "a", ui.BlockContent, 4},
			{30, 0, "a", ui.BlockContent, 5},
			{9, 1, "b", ui.BlockCheckbox, 0},
			{20, 2, "c", ui.BlockContent, 0},
			{20, 7, "", ui.BlockNowhere, 0},
		} {
			info, ok := s.pane.GetPositionInfo(tc.x, tc.y).(*ui.DocumentPanePositionInfo)
			if !ok {
				t.Fatal("got no document position info")
			}
			if info.BlockID != tc.id || info.Part != tc.part || info.Offset != tc.offset {
				t.Errorf("at %d,%d expected %s/%s/%d, got %s/%s/%d", tc.x, tc.y, tc.id, tc.part, tc.offset, info.BlockID, info.Part, info.Offset)
			}
		}
	})

	t.Run("wrapped content", func(t *testing.T) {
		long := model.Document{{ID: "l", Type: model.BlockTypeParagraph, Content: strings.Repeat("a", 40)}}
		s := newDocumentPaneSetup(t, long, "l")
		s.editors["l"].SetCaretOffset(40)
		s.draw()
		l, _ := s.pane.CaretLocation()
		if l.Y != 1 || l.X != 8+40-32 {
			t.Error("caret not on wrapped row:", l)
		}
	})
}

func TestSlashMenuPane(t *testing.T) {
	handler, screen := newSimulatedHandler(t, 60, 10)
	dims := func() (x, y, w, h int) { return 2, 1, panes.SlashMenuWidth, panes.SlashMenuHeight(5) }

	var menu slash.Menu
	pane := panes.NewSlashMenuPane(
		ui.NewConstrainedRenderer(handler, dims),
		dims,
		testStylesheet(),
		func() (*slash.Menu, bool) { return &menu, true },
	)

	if pane.IsVisible() {
		t.Error("closed menu is visible")
	}

	menu.Open(0)
	if !pane.IsVisible() {
		t.Error("open menu is not visible")
	}
	pane.Draw()
	handler.Show()
	if !strings.Contains(rowText(screen, 1), slash.Title) {
		t.Errorf("title not drawn: '%s'", rowText(screen, 1))
	}
	if !strings.Contains(rowText(screen, 2), model.BlockTypeParagraph.Info().Label) {
		t.Errorf("first entry not drawn: '%s'", rowText(screen, 2))
	}

	for _, tc := range []struct {
		x, y  int
		index int
	}{
		{3, 1, -1},
		{3, 2, 0},
		{20, 6, 4},
		{3, 7, -1},
	} {
		info, ok := pane.GetPositionInfo(tc.x, tc.y).(*ui.SlashMenuPanePositionInfo)
		if !ok {
			t.Fatal("got no menu position info")
		}
		if info.Index != tc.index {
			t.Errorf("at %d,%d expected entry %d, got %d", tc.x, tc.y, tc.index, info.Index)
		}
	}

	menu.SetFilter("zzz")
	pane.Draw()
	handler.Show()
	if !strings.Contains(rowText(screen, 2), slash.NoResults) {
		t.Errorf("no results not indicated: '%s'", rowText(screen, 2))
	}
}

func TestSaveIndicator(t *testing.T) {
	for status, expected := range map[storage.SaveStatus]string{
		storage.SaveStatusIdle:   "",
		storage.SaveStatusSaving: "Saving...",
		storage.SaveStatusSaved:  "Saved",
	} {
		if got := panes.SaveIndicator(status); got != expected {
			t.Errorf("expected '%s' for %s, got '%s'", expected, status, got)
		}
	}
}

func TestSlashMenuHeight(t *testing.T) {
	if panes.SlashMenuHeight(0) != panes.SlashMenuHeight(1) {
		t.Error("no results row not accounted for")
	}
	if panes.SlashMenuHeight(5) != 7 {
		t.Error("unexpected height for 5 entries:", panes.SlashMenuHeight(5))
	}
}

func TestHelpPane(t *testing.T) {
	handler, screen := newSimulatedHandler(t, 50, 6)
	dims := func() (x, y, w, h int) { return 0, 0, 50, 6 }
	pane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(handler, dims),
		dims,
		testStylesheet(),
		func() bool { return true },
		func() input.Help {
			return input.Help{
				"<c-q>":         "quit",
				"<c-a>, <home>": "move caret to beginning",
				"<c-s>":         "save now",
			}
		},
		nil,
	)
	pane.Draw()
	handler.Show()

	if !strings.Contains(rowText(screen, 0), "Key bindings") {
		t.Errorf("title not drawn: '%s'", rowText(screen, 0))
	}
	for row, expected := range map[int]string{
		2: "<c-a>, <home> move caret to beginning",
		3: "        <c-q> quit",
		4: "        <c-s> save now",
	} {
		if got := rowText(screen, row)[1:]; !strings.HasPrefix(got, expected) {
			t.Errorf("expected row %d to start with '%s', got '%s'", row, expected, got)
		}
	}
}
