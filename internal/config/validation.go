package config

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/blocknote/internal/input"
)

// Actions that can be bound to keys in the 'keys.global' section.
const (
	ActionQuit          input.Actionspec = "quit"
	ActionSaveNow       input.Actionspec = "save-now"
	ActionToggleLog     input.Actionspec = "toggle-log"
	ActionToggleHelp    input.Actionspec = "toggle-help"
	ActionToggleDebug   input.Actionspec = "toggle-debug"
	ActionMoveBlockUp   input.Actionspec = "move-block-up"
	ActionMoveBlockDown input.Actionspec = "move-block-down"
	ActionToggleChecked input.Actionspec = "toggle-checked"
	ActionAddBlockBelow input.Actionspec = "add-block-below"
	ActionDeleteBlock   input.Actionspec = "delete-block"
)

// GlobalActions are all actions that can be bound to keys.
var GlobalActions = []input.Actionspec{
	ActionQuit,
	ActionSaveNow,
	ActionToggleLog,
	ActionToggleHelp,
	ActionToggleDebug,
	ActionMoveBlockUp,
	ActionMoveBlockDown,
	ActionToggleChecked,
	ActionAddBlockBelow,
	ActionDeleteBlock,
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Editor.Validate(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Stylesheet.Validate(); err != nil {
		return fmt.Errorf("stylesheet: %w", err)
	}
	return validateKeys(c.Keys)
}

// Validate validates the editor configuration.
func (e *Editor) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.AutosaveDelay, validation.Required, validation.By(isPositiveDuration)),
		validation.Field(&e.SavedIndicatorDuration, validation.Required, validation.By(isPositiveDuration)),
	)
}

// slotPattern keeps slot names usable as file names within the storage
// directory.
var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateSlot validates a slot name, i.E. that it is a non-empty name of
// letters, digits, '-' and '_'.
func ValidateSlot(slot string) error {
	return validation.Validate(slot, validation.Required, validation.Match(slotPattern))
}

// Validate validates the storage configuration.
func (s *Storage) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Backend, validation.Required, validation.In(StorageBackendFiles, StorageBackendSQLite)),
		validation.Field(&s.Path, validation.Required),
		validation.Field(&s.Slot, validation.Required, validation.Match(slotPattern)),
	)
}

// Validate validates that all stylings of the stylesheet have valid colors.
func (s *Stylesheet) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Normal),
		validation.Field(&s.NormalEmphasized),
		validation.Field(&s.Paragraph),
		validation.Field(&s.Heading1),
		validation.Field(&s.Heading2),
		validation.Field(&s.Heading3),
		validation.Field(&s.Todo),
		validation.Field(&s.TodoChecked),
		validation.Field(&s.Placeholder),
		validation.Field(&s.Gutter),
		validation.Field(&s.DragTarget),
		validation.Field(&s.Menu),
		validation.Field(&s.MenuTitle),
		validation.Field(&s.MenuSelected),
		validation.Field(&s.MenuDescription),
		validation.Field(&s.Status),
		validation.Field(&s.LogDefault),
		validation.Field(&s.LogTitleBox),
		validation.Field(&s.LogEntryTypeError),
		validation.Field(&s.LogEntryTypeWarn),
		validation.Field(&s.LogEntryTypeInfo),
		validation.Field(&s.LogEntryTypeDebug),
		validation.Field(&s.LogEntryTypeTrace),
		validation.Field(&s.LogEntryLocation),
		validation.Field(&s.LogEntryTime),
		validation.Field(&s.Help),
	)
}

// Validate validates that the styling's colors are hex colors.
func (s Styling) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Fg, validation.Required, validation.By(isHexColor)),
		validation.Field(&s.Bg, validation.Required, validation.By(isHexColor)),
	)
}

func validateKeys(keys input.InputConfig) error {
	known := make([]interface{}, len(GlobalActions))
	for i, a := range GlobalActions {
		known[i] = a
	}
	for keyspec, actionspec := range keys.Global {
		if _, err := input.ConfigKeyspecToKeys(keyspec); err != nil {
			return fmt.Errorf("keys: invalid keyspec '%s' (%w)", keyspec, err)
		}
		if err := validation.Validate(actionspec, validation.In(known...)); err != nil {
			return fmt.Errorf("keys: invalid action '%s' for '%s' (%w)", actionspec, keyspec, err)
		}
	}
	return nil
}

func isPositiveDuration(value interface{}) error {
	s, _ := value.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("not a duration")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func isHexColor(value interface{}) error {
	s, _ := value.(string)
	if _, err := colorful.Hex(s); err != nil {
		return fmt.Errorf("not a hex color")
	}
	return nil
}
