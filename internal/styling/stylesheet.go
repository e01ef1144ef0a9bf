package styling

import (
	"github.com/ja-he/blocknote/internal/config"
	"github.com/ja-he/blocknote/internal/model"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	Paragraph   DrawStyling
	Heading1    DrawStyling
	Heading2    DrawStyling
	Heading3    DrawStyling
	Todo        DrawStyling
	TodoChecked DrawStyling
	Placeholder DrawStyling
	Gutter      DrawStyling
	DragTarget  DrawStyling

	Menu            DrawStyling
	MenuTitle       DrawStyling
	MenuSelected    DrawStyling
	MenuDescription DrawStyling

	Status DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	return &Stylesheet{
		Normal:           StyleFromConfig(config.Normal),
		NormalEmphasized: StyleFromConfig(config.NormalEmphasized),

		Paragraph:   StyleFromConfig(config.Paragraph),
		Heading1:    StyleFromConfig(config.Heading1),
		Heading2:    StyleFromConfig(config.Heading2),
		Heading3:    StyleFromConfig(config.Heading3),
		Todo:        StyleFromConfig(config.Todo),
		TodoChecked: StyleFromConfig(config.TodoChecked),
		Placeholder: StyleFromConfig(config.Placeholder),
		Gutter:      StyleFromConfig(config.Gutter),
		DragTarget:  StyleFromConfig(config.DragTarget),

		Menu:            StyleFromConfig(config.Menu),
		MenuTitle:       StyleFromConfig(config.MenuTitle),
		MenuSelected:    StyleFromConfig(config.MenuSelected),
		MenuDescription: StyleFromConfig(config.MenuDescription),

		Status: StyleFromConfig(config.Status),

		LogDefault:        StyleFromConfig(config.LogDefault),
		LogTitleBox:       StyleFromConfig(config.LogTitleBox),
		LogEntryTypeError: StyleFromConfig(config.LogEntryTypeError),
		LogEntryTypeWarn:  StyleFromConfig(config.LogEntryTypeWarn),
		LogEntryTypeInfo:  StyleFromConfig(config.LogEntryTypeInfo),
		LogEntryTypeDebug: StyleFromConfig(config.LogEntryTypeDebug),
		LogEntryTypeTrace: StyleFromConfig(config.LogEntryTypeTrace),
		LogEntryLocation:  StyleFromConfig(config.LogEntryLocation),
		LogEntryTime:      StyleFromConfig(config.LogEntryTime),

		Help: StyleFromConfig(config.Help),
	}
}

// ForBlock returns the styling a block's content is drawn with, which depends
// on its type and, for to-dos, on whether it is checked.
func (s *Stylesheet) ForBlock(b model.Block) DrawStyling {
	switch b.Type {
	case model.BlockTypeHeading1:
		return s.Heading1
	case model.BlockTypeHeading2:
		return s.Heading2
	case model.BlockTypeHeading3:
		return s.Heading3
	case model.BlockTypeTodo:
		if b.IsChecked() {
			return s.TodoChecked
		}
		return s.Todo
	default:
		return s.Paragraph
	}
}
