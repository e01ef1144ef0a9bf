// Package config implements the configuration as present in a config file at
// '${BLOCKNOTE_HOME}/config.yaml'.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/blocknote/internal/input"
)

// Config is the configuration data as present in a config file at
// '${BLOCKNOTE_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Editor     Editor            `yaml:"editor"`
	Storage    Storage           `yaml:"storage"`
	Keys       input.InputConfig `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal           Styling `yaml:"normal"`
	NormalEmphasized Styling `yaml:"normal-emphasized"`

	Paragraph   Styling `yaml:"paragraph"`
	Heading1    Styling `yaml:"heading1"`
	Heading2    Styling `yaml:"heading2"`
	Heading3    Styling `yaml:"heading3"`
	Todo        Styling `yaml:"todo"`
	TodoChecked Styling `yaml:"todo-checked"`
	Placeholder Styling `yaml:"placeholder"`
	Gutter      Styling `yaml:"gutter"`
	DragTarget  Styling `yaml:"drag-target"`

	Menu            Styling `yaml:"menu"`
	MenuTitle       Styling `yaml:"menu-title"`
	MenuSelected    Styling `yaml:"menu-selected"`
	MenuDescription Styling `yaml:"menu-description"`

	Status Styling `yaml:"status"`

	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`

	Help Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold          bool `yaml:"bold,omitempty"`
	Italic        bool `yaml:"italic,omitempty"`
	Underlined    bool `yaml:"underlined,omitempty"`
	Strikethrough bool `yaml:"strikethrough,omitempty"`
}

// Editor is the configuration of the editing behavior.
//
// For the format of durations see time.ParseDuration.
type Editor struct {
	AutosaveDelay          string `yaml:"autosave-delay"`
	SavedIndicatorDuration string `yaml:"saved-indicator-duration"`
}

// AutosaveDelayDuration returns the delay after the last change before the
// document is saved.
func (e Editor) AutosaveDelayDuration() time.Duration {
	d, _ := time.ParseDuration(e.AutosaveDelay)
	return d
}

// SavedIndicatorDurationDuration returns how long a successful save is
// indicated.
func (e Editor) SavedIndicatorDurationDuration() time.Duration {
	d, _ := time.ParseDuration(e.SavedIndicatorDuration)
	return d
}

// Storage backends.
const (
	StorageBackendFiles  = "files"
	StorageBackendSQLite = "sqlite"
)

// Storage is the configuration of where documents are stored.
// A relative path is relative to the blocknote home directory.
type Storage struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Slot    string `yaml:"slot"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
// Environment variables referenced in the data (e.g. '${HOME}') are expanded
// before parsing, and the resulting configuration is validated.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Dark:
		defaultConfig = Default(Dark)
	case Light:
		defaultConfig = Default(Light)
	default:
		defaultConfig = Default(Dark)
	}

	expanded := os.ExpandEnv(string(yamlData))

	parsedConfig := Config{}
	err := yaml.Unmarshal([]byte(expanded), &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	err = result.Validate()
	if err != nil {
		return defaultConfig, fmt.Errorf("invalid configuration (%w)", err)
	}

	return result, nil
}

// Load reads the config file at the given path and uses it to augment the
// default configuration for the given theme.
// A missing file is not an error; the defaults are used.
func Load(filename string, defaultTheme ColorschemeType) (Config, error) {
	yamlData, err := os.ReadFile(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Default(defaultTheme), fmt.Errorf("could not read config file '%s' (%w)", filename, err)
		}
		log.Info().Str("file", filename).Msg("no config file, using defaults")
		yamlData = make([]byte, 0)
	}
	return ParseConfigAugmentDefaults(defaultTheme, yamlData)
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if augment.Editor.AutosaveDelay != "" {
		result.Editor.AutosaveDelay = augment.Editor.AutosaveDelay
	}
	if augment.Editor.SavedIndicatorDuration != "" {
		result.Editor.SavedIndicatorDuration = augment.Editor.SavedIndicatorDuration
	}

	if augment.Storage.Backend != "" {
		result.Storage.Backend = augment.Storage.Backend
	}
	if augment.Storage.Path != "" {
		result.Storage.Path = augment.Storage.Path
	}
	if augment.Storage.Slot != "" {
		result.Storage.Slot = augment.Storage.Slot
	}

	result.Keys.Global = map[input.Keyspec]input.Actionspec{}
	for keyspec, actionspec := range base.Keys.Global {
		result.Keys.Global[keyspec] = actionspec
	}
	for keyspec, actionspec := range augment.Keys.Global {
		if actionspec == "" {
			delete(result.Keys.Global, keyspec)
			continue
		}
		result.Keys.Global[keyspec] = actionspec
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	for _, field := range []struct{ result, augment *Styling }{
		{&result.Normal, &augment.Normal},
		{&result.NormalEmphasized, &augment.NormalEmphasized},
		{&result.Paragraph, &augment.Paragraph},
		{&result.Heading1, &augment.Heading1},
		{&result.Heading2, &augment.Heading2},
		{&result.Heading3, &augment.Heading3},
		{&result.Todo, &augment.Todo},
		{&result.TodoChecked, &augment.TodoChecked},
		{&result.Placeholder, &augment.Placeholder},
		{&result.Gutter, &augment.Gutter},
		{&result.DragTarget, &augment.DragTarget},
		{&result.Menu, &augment.Menu},
		{&result.MenuTitle, &augment.MenuTitle},
		{&result.MenuSelected, &augment.MenuSelected},
		{&result.MenuDescription, &augment.MenuDescription},
		{&result.Status, &augment.Status},
		{&result.LogDefault, &augment.LogDefault},
		{&result.LogTitleBox, &augment.LogTitleBox},
		{&result.LogEntryTypeError, &augment.LogEntryTypeError},
		{&result.LogEntryTypeWarn, &augment.LogEntryTypeWarn},
		{&result.LogEntryTypeInfo, &augment.LogEntryTypeInfo},
		{&result.LogEntryTypeDebug, &augment.LogEntryTypeDebug},
		{&result.LogEntryTypeTrace, &augment.LogEntryTypeTrace},
		{&result.LogEntryLocation, &augment.LogEntryLocation},
		{&result.LogEntryTime, &augment.LogEntryTime},
		{&result.Help, &augment.Help},
	} {
		field.result.overwriteIfDefined(*field.augment)
	}

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		style := *augment.Style
		s.Style = &style
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
