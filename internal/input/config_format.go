package input

// Keyspec is a key sequence specification, e.g. "<c-q>" or "gg".
type Keyspec string

// Actionspec names an action that input can be mapped to, e.g. "quit".
type Actionspec string

// InputConfig is the configurable input mapping.
type InputConfig struct {
	// Global are the mappings available regardless of which block is being
	// edited.
	Global map[Keyspec]Actionspec `yaml:"global"`
}
