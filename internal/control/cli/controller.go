package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ja-he/blocknote/internal/config"
	"github.com/ja-he/blocknote/internal/control"
	"github.com/ja-he/blocknote/internal/control/action"
	"github.com/ja-he/blocknote/internal/control/edit"
	"github.com/ja-he/blocknote/internal/control/edit/slash"
	"github.com/ja-he/blocknote/internal/control/edit/views"
	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/model"
	"github.com/ja-he/blocknote/internal/potatolog"
	"github.com/ja-he/blocknote/internal/storage"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/tui"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/ui/panes"
)

const (
	statusHeight = 1
	helpWidth    = 64
	perfWidth    = 50
	perfHeight   = 2
)

// Controller is the struct for the TUI controller.
//
// All handling of screen events, and thereby every mutation of the document,
// happens on the single UI loop goroutine started by Run.
type Controller struct {
	data         *control.ControlData
	rootPane     *panes.RootPane
	documentPane *panes.DocumentPane

	document  *control.DocumentController
	surfaces  *control.BlockSurfaces
	store     *storage.DocumentStore
	autosaver *storage.AutoSaver

	controllerEvents chan controllerEvent

	// non-nil while a bracketed paste is in progress
	pasteBuffer *strings.Builder
	// the buttons held as of the previous mouse event, to detect presses
	lastButtons tcell.ButtonMask

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

// NewController creates a new Controller drawing to the given screen handler
// and persisting to the given store.
//
// The document starts out as the seed document; the stored document (if
// any) replaces it once the UI is up.
func NewController(
	envData control.EnvData,
	configData config.Config,
	stylesheet styling.Stylesheet,
	store *storage.DocumentStore,
	renderer *tui.ScreenHandler,
) (*Controller, error) {
	controller := Controller{
		data:             control.NewControlData(envData),
		store:            store,
		controllerEvents: make(chan controllerEvent, 32),
	}
	controller.data.MouseEditState = edit.MouseEditStateNone

	controller.document = control.NewDocumentController(model.SeedDocument())
	controller.surfaces = control.NewBlockSurfaces(controller.document)
	controller.document.OnChange(controller.surfaces.Mount)
	controller.surfaces.Mount(controller.document.Document())

	controller.autosaver = storage.NewAutoSaver(
		store,
		configData.Editor.AutosaveDelayDuration(),
		configData.Editor.SavedIndicatorDurationDuration(),
		func(storage.SaveStatus) { controller.requestRender() },
	)

	globalInputTree, err := input.ConstructInputTree(controller.globalActions(configData.Keys.Global))
	if err != nil {
		return nil, fmt.Errorf("failed to construct global input tree (%w)", err)
	}

	screenSize := func() (w, h int) { _, _, w, h = renderer.Dimensions(); return }
	screenDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, 0, screenWidth, screenHeight
	}
	documentDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, 0, screenWidth, screenHeight - statusHeight
	}
	statusDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, screenHeight - statusHeight, screenWidth, statusHeight
	}
	helpDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		w = min(helpWidth, screenWidth)
		return (screenWidth - w) / 2, 0, w, screenHeight - statusHeight
	}
	perfDimensions := func() (x, y, w, h int) {
		screenWidth, _ := screenSize()
		return screenWidth - perfWidth - 1, 1, perfWidth, perfHeight
	}
	menuDimensions := func() (x, y, w, h int) {
		menu, ok := controller.openMenu()
		if !ok {
			return 0, 0, 0, 0
		}
		caret, ok := controller.documentPane.CaretLocation()
		if !ok {
			return 0, 0, 0, 0
		}
		_, _, docWidth, docHeight := documentDimensions()
		return placeMenu(caret, len(menu.Matches()), docWidth, docHeight)
	}

	cursorWrangler := ui.NewCursorWrangler(renderer)

	controller.documentPane = panes.NewDocumentPane(
		ui.NewConstrainedRenderer(renderer, documentDimensions),
		documentDimensions,
		stylesheet,
		controller.document.Document,
		controller.document.FocusedID,
		func(id string) (views.BlockEditorView, bool) {
			e, ok := controller.surfaces.Editor(id)
			if !ok {
				return nil, false
			}
			return e, true
		},
		func() (input.SimpleInputProcessor, bool) {
			p, ok := controller.surfaces.Focused()
			if !ok {
				return nil, false
			}
			return p, true
		},
		func() (draggedID, targetID string) {
			if controller.data.MouseEditState != edit.MouseEditStateDragging {
				return "", ""
			}
			return controller.data.DraggedBlockID, controller.data.DragTargetID
		},
		cursorWrangler,
	)

	helpPaneInputTree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"<esc>": action.NewSimple(func() string { return "close help" }, func() {
				controller.data.ShowHelp = false
			}),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for help pane (%w)", err)
	}
	logPaneInputTree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"<esc>": action.NewSimple(func() string { return "close log" }, func() {
				controller.data.ShowLog = false
			}),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for log pane (%w)", err)
	}

	helpContent := func() input.Help {
		result := input.Help{}
		for k, v := range globalInputTree.GetHelp() {
			result[k] = v
		}
		for k, v := range controller.documentPane.GetHelp() {
			result[k] = v
		}
		return result
	}

	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(renderer, documentDimensions),
		documentDimensions,
		stylesheet,
		func() bool { return controller.data.ShowLog },
		func() string { return "LOG" },
		potatolog.GlobalMemoryLogReaderWriter,
	)
	logPane.InputProcessor = logPaneInputTree

	controller.rootPane = panes.NewRootPane(
		renderer,
		cursorWrangler,
		screenDimensions,
		controller.documentPane,
		panes.NewStatusPane(
			ui.NewConstrainedRenderer(renderer, statusDimensions),
			statusDimensions,
			stylesheet,
			controller.document.Document,
			controller.document.FocusedID,
			controller.autosaver.Status,
			store.Slot(),
		),
		panes.NewSlashMenuPane(
			ui.NewConstrainedRenderer(renderer, menuDimensions),
			menuDimensions,
			stylesheet,
			controller.openMenu,
		),
		logPane,
		panes.NewHelpPane(
			ui.NewConstrainedRenderer(renderer, helpDimensions),
			helpDimensions,
			stylesheet,
			func() bool { return controller.data.ShowHelp },
			helpContent,
			helpPaneInputTree,
		),
		panes.NewPerfPane(
			ui.NewConstrainedRenderer(renderer, perfDimensions),
			perfDimensions,
			func() bool { return controller.data.ShowDebug },
			&controller.data.RenderTimes,
			&controller.data.EventProcessingTimes,
		),
		globalInputTree,
	)

	controller.screenEvents = renderer
	controller.initializedScreen = renderer
	controller.syncer = renderer

	return &controller, nil
}

// placeMenu returns the dimensions of the command menu for the given caret
// location: directly below the caret, or above it if there is no room below,
// and shifted left if it would leave the document pane.
func placeMenu(caret ui.CursorLocation, matches int, docWidth, docHeight int) (x, y, w, h int) {
	w = min(panes.SlashMenuWidth, docWidth)
	h = panes.SlashMenuHeight(matches)

	x = caret.X
	if x+w > docWidth {
		x = max(0, docWidth-w)
	}
	y = caret.Y + 1
	if y+h > docHeight && caret.Y-h >= 0 {
		y = caret.Y - h
	}
	return x, y, w, h
}

// globalActions maps the configured global key bindings to their actions.
func (c *Controller) globalActions(bindings map[input.Keyspec]input.Actionspec) map[input.Keyspec]action.Action {
	available := map[input.Actionspec]action.Action{
		config.ActionQuit: action.NewSimple(func() string { return "exit program (pending changes are saved)" }, c.quit),
		config.ActionSaveNow: action.NewSimple(func() string { return "save now" }, func() {
			c.autosaver.Notify(c.document.Document())
			c.autosaver.Flush()
		}),
		config.ActionToggleLog: action.NewSimple(func() string { return "toggle log" }, func() {
			c.data.ShowLog = !c.data.ShowLog
		}),
		config.ActionToggleHelp: action.NewSimple(func() string { return "toggle help" }, func() {
			c.data.ShowHelp = !c.data.ShowHelp
		}),
		config.ActionToggleDebug: action.NewSimple(func() string { return "toggle performance overlay" }, func() {
			c.data.ShowDebug = !c.data.ShowDebug
		}),
		config.ActionMoveBlockUp: action.NewOnBlock("move block up", c.document.FocusedID, func(id string) {
			c.document.MoveBlock(id, -1)
		}),
		config.ActionMoveBlockDown: action.NewOnBlock("move block down", c.document.FocusedID, func(id string) {
			c.document.MoveBlock(id, +1)
		}),
		config.ActionToggleChecked: action.NewOnBlock("toggle to-do", c.document.FocusedID, c.document.ToggleChecked),
		config.ActionAddBlockBelow: action.NewOnBlock("add block below", c.document.FocusedID, c.addBlockBelow),
		config.ActionDeleteBlock:   action.NewOnBlock("delete block", c.document.FocusedID, c.deleteBlock),
	}

	result := make(map[input.Keyspec]action.Action, len(bindings))
	for keyspec, actionspec := range bindings {
		a, ok := available[actionspec]
		if !ok {
			log.Warn().Str("keys", string(keyspec)).Str("action", string(actionspec)).Msg("ignoring binding to unknown action")
			continue
		}
		result[keyspec] = a
	}
	return result
}

// openMenu returns the focused block's command menu, if it is open.
func (c *Controller) openMenu() (*slash.Menu, bool) {
	p, ok := c.surfaces.Focused()
	if !ok || !p.Menu().IsOpen() {
		return nil, false
	}
	return p.Menu(), true
}

func (c *Controller) addBlockBelow(id string) {
	newID := c.document.AddBlock(id, model.BlockTypeParagraph, "")
	if newID != "" {
		c.document.Focus(newID, 0)
	}
}

// deleteBlock deletes the block with the given ID, moving focus to the
// previous block.
func (c *Controller) deleteBlock(id string) {
	c.document.FocusPrev(id)
	c.document.DeleteBlock(id)
}

func (c *Controller) quit() {
	go func() { c.controllerEvents <- controllerEventExit }()
}

// requestRender asks the UI loop for a redraw. Safe to call from any
// goroutine; if renders are already pending, this is a no-op.
func (c *Controller) requestRender() {
	select {
	case c.controllerEvents <- controllerEventRender:
	default:
	}
}

// load replaces the document by the stored one, if there is one.
func (c *Controller) load() {
	doc, ok := c.store.Load()
	if !ok {
		log.Info().Msg("starting from seed document")
		return
	}
	c.document.Replace(doc)
}

// render draws the UI and then applies pending focus requests; if that moved
// the caret, the UI is redrawn to show it.
func (c *Controller) render() {
	start := time.Now()

	c.rootPane.Draw()
	if c.document.FlushFocus() {
		c.surfaces.CloseMenusExcept(c.document.FocusedID())
		c.rootPane.Draw()
	}

	c.data.RenderTimes.Add(uint64(time.Since(start).Microseconds()))
}

func (c *Controller) handleScreenEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		c.handlePasteEvent(e)

	case *tcell.EventKey:
		if c.pasteBuffer != nil {
			switch e.Key() {
			case tcell.KeyRune:
				c.pasteBuffer.WriteRune(e.Rune())
			case tcell.KeyEnter:
				c.pasteBuffer.WriteRune('\n')
			}
			return
		}

		c.data.MouseEditState = edit.MouseEditStateNone
		c.data.DraggedBlockID, c.data.DragTargetID = "", ""

		key := input.KeyFromTcellEvent(e)
		inputApplied := c.rootPane.ProcessInput(key)
		if !inputApplied {
			log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		x, y := e.Position()

		buttons := e.Buttons()
		pressed := buttons&tcell.Button1 != 0 && c.lastButtons&tcell.Button1 == 0
		c.lastButtons = buttons

		switch c.data.MouseEditState {
		case edit.MouseEditStateDragging:
			c.handleMouseDragEvent(buttons, x, y)
		default:
			c.handleMouseNoneEditEvent(buttons, pressed, x, y)
		}

	case *tcell.EventResize:
		c.syncer.NeedsSync()

	}
}

func (c *Controller) handlePasteEvent(e *tcell.EventPaste) {
	switch {
	case e.Start():
		c.pasteBuffer = &strings.Builder{}
	case e.End():
		if c.pasteBuffer == nil {
			return
		}
		text := c.pasteBuffer.String()
		c.pasteBuffer = nil
		p, ok := c.surfaces.Focused()
		if !ok {
			log.Warn().Int("length", len(text)).Msg("dropping paste, no block focused")
			return
		}
		p.InsertText(text)
	}
}

func (c *Controller) handleMouseNoneEditEvent(buttons tcell.ButtonMask, pressed bool, x, y int) {
	positionInfo := c.rootPane.GetPositionInfo(x, y)
	if positionInfo == nil {
		return
	}

	focused, hasFocused := c.surfaces.Focused()
	menuOpen := hasFocused && focused.Menu().IsOpen()

	if menuInfo, ok := positionInfo.(*ui.SlashMenuPanePositionInfo); ok {
		if !menuOpen || menuInfo.Index < 0 {
			return
		}
		switch {
		case pressed:
			matches := focused.Menu().Matches()
			if menuInfo.Index < len(matches) {
				focused.SelectType(matches[menuInfo.Index])
			}
		case buttons == tcell.ButtonNone:
			focused.Menu().Hover(menuInfo.Index)
		}
		return
	}

	if !pressed {
		return
	}

	// a click anywhere but on the menu dismisses it, then acts as usual
	if menuOpen {
		focused.CloseMenu()
	}

	info, ok := positionInfo.(*ui.DocumentPanePositionInfo)
	if !ok || info.BlockID == "" {
		return
	}

	switch info.Part {
	case ui.BlockDeleteControl:
		c.deleteBlock(info.BlockID)
	case ui.BlockAddControl:
		c.addBlockBelow(info.BlockID)
	case ui.BlockHandle:
		c.data.MouseEditState = edit.MouseEditStateDragging
		c.data.DraggedBlockID = info.BlockID
		c.data.DragTargetID = info.BlockID
		log.Debug().Str("block", info.BlockID).Msg("started dragging block")
	case ui.BlockCheckbox:
		c.document.ToggleChecked(info.BlockID)
	case ui.BlockContent:
		c.document.Focus(info.BlockID, info.Offset)
	}
}

func (c *Controller) handleMouseDragEvent(buttons tcell.ButtonMask, x, y int) {
	if buttons&tcell.Button1 != 0 {
		info, ok := c.rootPane.GetPositionInfo(x, y).(*ui.DocumentPanePositionInfo)
		if ok {
			c.data.DragTargetID = info.BlockID
		} else {
			c.data.DragTargetID = ""
		}
		return
	}

	draggedID, targetID := c.data.DraggedBlockID, c.data.DragTargetID
	c.data.MouseEditState = edit.MouseEditStateNone
	c.data.DraggedBlockID, c.data.DragTargetID = "", ""

	if targetID == "" || targetID == draggedID {
		log.Debug().Str("block", draggedID).Msg("dropped block without target")
		return
	}
	log.Debug().Str("block", draggedID).Str("target", targetID).Msg("dropped block")
	c.document.Reorder(draggedID, targetID)
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Run runs the controller until the program is exited, then saves pending
// changes.
//
// A poll goroutine forwards screen events to the UI loop, which handles one
// event at a time and redraws after each.
func (c *Controller) Run() error {
	log.Info().Msg("blocknote TUI started")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	screenEvents := make(chan tcell.Event, 32)

	g.Go(func() error {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				// screen finalized
				return nil
			}
			select {
			case screenEvents <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		defer c.initializedScreen.Fini()

		c.render()
		c.load()
		c.document.OnChange(c.autosaver.Notify)
		c.render()

		for {
			select {
			case ev := <-screenEvents:
				start := time.Now()
				c.handleScreenEvent(ev)
				c.data.EventProcessingTimes.Add(uint64(time.Since(start).Microseconds()))

			case controllerEvent := <-c.controllerEvents:
				switch controllerEvent {
				case controllerEventExit:
					return nil
				case controllerEventRender:
				default:
					log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
				}

			case <-ctx.Done():
				return nil
			}

			c.render()
		}
	})

	err := g.Wait()

	c.autosaver.Flush()
	c.autosaver.Stop()
	log.Info().Msg("blocknote TUI exited")

	return err
}
