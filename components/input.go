package components

import (
	cfg "github.com/automoto/notedrop/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// InputTextData is the text field's value. Nothing consumes Text yet; it is
// captured and shown in the debug overlay only.
type InputTextData struct {
	Text    string
	Focused bool
	Edits   int
}

var InputText = donburi.NewComponentType[InputTextData]()
