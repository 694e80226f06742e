package systems

import (
	"math/rand/v2"

	"github.com/automoto/notedrop/archetypes"
	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Press shortcuts in issuance order when several land on the same tick.
var pressActions = []cfg.ActionID{cfg.ActionPressA, cfg.ActionPressB}

// UpdateInput polls the keyboard and updates the Input component.
// Must run BEFORE the systems that read actions.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// NewUpdatePressKeys returns a system that turns the press shortcuts into
// button presses. Shortcuts are ignored while the text field has focus so
// typing digits does not play sounds.
func NewUpdatePressKeys(p Presser, rng *rand.Rand) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetOrCreateInputText(e).Focused {
			return
		}
		input := GetOrCreateInput(e)
		for _, actionID := range pressActions {
			if GetAction(input, actionID).JustPressed {
				HandlePress(e, p, cfg.Input.PressGlyphs[actionID], rng)
			}
		}
	}
}

// UpdateRotate swaps the window's width and height, the desktop stand-in for
// turning the device.
func UpdateRotate(e *ecs.ECS) {
	if !GetAction(GetOrCreateInput(e), cfg.ActionRotate).JustPressed {
		return
	}
	w, h := ebiten.WindowSize()
	ebiten.SetWindowSize(h, w)

	l := logging.For("layout")
	l.Debug().Int("width", h).Int("height", w).Msg("rotated")
}

// SetInputText records a new value of the text field.
func SetInputText(e *ecs.ECS, text string) {
	t := GetOrCreateInputText(e)
	if t.Text == text {
		return
	}
	t.Text = text
	t.Edits++

	l := logging.For("input")
	l.Debug().Int("length", len([]rune(text))).Msg("input text changed (no consumer)")
}

// SetInputFocus records whether the text field has keyboard focus.
func SetInputFocus(e *ecs.ECS, focused bool) {
	GetOrCreateInputText(e).Focused = focused
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetOrCreateInputText returns the singleton InputText component.
func GetOrCreateInputText(e *ecs.ECS) *components.InputTextData {
	entry, ok := components.InputText.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
	}
	return components.InputText.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
