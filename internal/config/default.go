package config

import "github.com/ja-he/blocknote/internal/input"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Editor: Editor{
			AutosaveDelay:          "600ms",
			SavedIndicatorDuration: "2s",
		},
		Storage: Storage{
			Backend: StorageBackendFiles,
			Path:    "data",
			Slot:    "editor-blocks",
		},
		Keys: input.InputConfig{
			Global: defaultGlobalKeys(),
		},
	}
}

func defaultGlobalKeys() map[input.Keyspec]input.Actionspec {
	return map[input.Keyspec]input.Actionspec{
		"<c-q>": ActionQuit,
		"<c-s>": ActionSaveNow,
		"<c-l>": ActionToggleLog,
		"<c-g>": ActionToggleHelp,
		"<c-o>": ActionToggleDebug,
		"<c-k>": ActionMoveBlockUp,
		"<c-j>": ActionMoveBlockDown,
		"<c-t>": ActionToggleChecked,
		"<c-n>": ActionAddBlockBelow,
		"<c-d>": ActionDeleteBlock,
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			NormalEmphasized:  Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
			Paragraph:         Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			Heading1:          Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{Bold: true, Underlined: true}},
			Heading2:          Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{Bold: true}},
			Heading3:          Styling{Fg: "#e0e0e0", Bg: "#000000", Style: &FontStyle{Bold: true, Italic: true}},
			Todo:              Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			TodoChecked:       Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{Strikethrough: true}},
			Placeholder:       Styling{Fg: "#606060", Bg: "#000000", Style: &FontStyle{Italic: true}},
			Gutter:            Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			DragTarget:        Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{}},
			Menu:              Styling{Fg: "#f0f0f0", Bg: "#303030", Style: &FontStyle{}},
			MenuTitle:         Styling{Fg: "#a0a0a0", Bg: "#303030", Style: &FontStyle{Bold: true}},
			MenuSelected:      Styling{Fg: "#ffffff", Bg: "#505050", Style: &FontStyle{Bold: true}},
			MenuDescription:   Styling{Fg: "#a0a0a0", Bg: "#303030", Style: &FontStyle{}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		NormalEmphasized:  Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		Paragraph:         Styling{Fg: "#202020", Bg: "#ffffff", Style: &FontStyle{}},
		Heading1:          Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{Bold: true, Underlined: true}},
		Heading2:          Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
		Heading3:          Styling{Fg: "#202020", Bg: "#ffffff", Style: &FontStyle{Bold: true, Italic: true}},
		Todo:              Styling{Fg: "#202020", Bg: "#ffffff", Style: &FontStyle{}},
		TodoChecked:       Styling{Fg: "#a0a0a0", Bg: "#ffffff", Style: &FontStyle{Strikethrough: true}},
		Placeholder:       Styling{Fg: "#b0b0b0", Bg: "#ffffff", Style: &FontStyle{Italic: true}},
		Gutter:            Styling{Fg: "#a0a0a0", Bg: "#ffffff", Style: &FontStyle{}},
		DragTarget:        Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
		Menu:              Styling{Fg: "#202020", Bg: "#f0f0f0", Style: &FontStyle{}},
		MenuTitle:         Styling{Fg: "#808080", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		MenuSelected:      Styling{Fg: "#000000", Bg: "#d0d0d0", Style: &FontStyle{Bold: true}},
		MenuDescription:   Styling{Fg: "#808080", Bg: "#f0f0f0", Style: &FontStyle{}},
		Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#a0a0a0", Bg: "#ffffff", Style: &FontStyle{}},
		Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
	}
}
