package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical screen action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPressA
	ActionPressB
	ActionRotate
	ActionBlurInput
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Glyph triggered by each press action
	PressGlyphs map[ActionID]Glyph
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPressA: {
				Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1},
			},
			ActionPressB: {
				Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2},
			},
			// Swaps window width and height, emulating a device rotation
			ActionRotate: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionBlurInput: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
		PressGlyphs: map[ActionID]Glyph{
			ActionPressA: GlyphA,
			ActionPressB: GlyphB,
		},
	}
}
