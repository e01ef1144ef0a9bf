package control

import (
	"github.com/ja-he/blocknote/internal/control/edit"
	"github.com/ja-he/blocknote/internal/util"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

// ControlData is the state of the editor session that is not part of the
// document itself.
type ControlData struct {
	EnvData EnvData

	ShowLog   bool
	ShowHelp  bool
	ShowDebug bool

	RenderTimes          util.MetricsHandler
	EventProcessingTimes util.MetricsHandler

	MouseEditState edit.MouseEditState
	// DraggedBlockID is the ID of the block being dragged by its handle.
	DraggedBlockID string
	// DragTargetID is the ID of the block the dragged block would be moved to
	// if dropped now.
	DragTargetID string
}

// NewControlData returns a pointer to new control data for the given
// environment.
func NewControlData(env EnvData) *ControlData {
	return &ControlData{
		EnvData: env,
	}
}
