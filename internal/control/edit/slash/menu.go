// Package slash implements the command menu that is opened by typing '/' in a
// block and converts the block to another type.
package slash

import (
	"strings"

	"github.com/ja-he/blocknote/internal/model"
)

// Title is the heading shown above the menu's entries.
const Title = "BASIC BLOCKS"

// NoResults is shown instead of entries when nothing matches the filter.
const NoResults = "No results"

// Menu is the state of the command menu of a single block.
//
// A closed menu has no further state. An open menu remembers the caret offset
// the '/' was typed at (the slash start), the filter typed after it and the
// index of the selected match.
type Menu struct {
	open       bool
	slashStart int
	filter     string
	selected   int
}

// Open opens the menu for a '/' typed at the given caret offset, with an
// empty filter and the first match selected.
func (m *Menu) Open(slashStart int) {
	m.open = true
	m.slashStart = slashStart
	m.filter = ""
	m.selected = 0
}

// Close closes the menu, forgetting the slash start.
func (m *Menu) Close() {
	*m = Menu{}
}

// IsOpen returns whether the menu is open.
func (m *Menu) IsOpen() bool { return m.open }

// SlashStart returns the caret offset at which the '/' was typed.
func (m *Menu) SlashStart() int { return m.slashStart }

// Filter returns the current filter text.
func (m *Menu) Filter() string { return m.filter }

// Selected returns the index of the selected match.
func (m *Menu) Selected() int { return m.selected }

// SetFilter sets the filter, resetting the selection if it changed.
func (m *Menu) SetFilter(filter string) {
	if filter != m.filter {
		m.filter = filter
		m.selected = 0
	}
}

// Sync updates the menu for the given block content and caret offset: the
// filter becomes the text between the '/' and the caret, and the menu closes
// if the caret has moved to or before the slash start.
func (m *Menu) Sync(content string, caret int) {
	if !m.open {
		return
	}
	runes := []rune(content)
	if caret <= m.slashStart || caret > len(runes) {
		m.Close()
		return
	}
	m.SetFilter(string(runes[m.slashStart+1 : caret]))
}

// Matches returns the block types matching the current filter.
func (m *Menu) Matches() []model.BlockType {
	return Matches(m.filter)
}

// Down moves the selection to the next match, stopping at the last.
func (m *Menu) Down() {
	n := len(m.Matches())
	m.selected++
	if m.selected > n-1 {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Up moves the selection to the previous match, stopping at the first.
func (m *Menu) Up() {
	if m.selected > 0 {
		m.selected--
	}
}

// Hover selects the match at the given index, if there is one.
func (m *Menu) Hover(index int) {
	if index >= 0 && index < len(m.Matches()) {
		m.selected = index
	}
}

// Selection returns the selected match, if there is one.
func (m *Menu) Selection() (model.BlockType, bool) {
	matches := m.Matches()
	if !m.open || m.selected < 0 || m.selected >= len(matches) {
		return "", false
	}
	return matches[m.selected], true
}

// Matches returns the block types whose label contains the given filter or
// whose identifier (e.g. "todo" for "To-do list") starts with it, ignoring
// case, in declaration order.
func Matches(filter string) []model.BlockType {
	needle := strings.ToLower(filter)
	result := []model.BlockType{}
	for _, t := range model.BlockTypes {
		if strings.Contains(strings.ToLower(t.Info().Label), needle) || strings.HasPrefix(string(t), needle) {
			result = append(result, t)
		}
	}
	return result
}

// Apply returns the result of selecting a block type from a menu opened at
// slashStart, with the caret at the given offset: the '/' and the filter are
// cut out of the content, the block is converted to the selected type, and
// the caret belongs where the '/' was.
func Apply(b model.Block, t model.BlockType, slashStart int, caret int) (model.Block, int) {
	runes := []rune(b.Content)
	if slashStart < 0 {
		slashStart = 0
	}
	if slashStart > len(runes) {
		slashStart = len(runes)
	}
	if caret < slashStart {
		caret = slashStart
	}
	if caret > len(runes) {
		caret = len(runes)
	}
	b.Content = string(runes[:slashStart]) + string(runes[caret:])
	return model.Retype(b, t), slashStart
}
