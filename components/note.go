package components

import (
	"github.com/automoto/notedrop/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NoteData is a floating glyph falling from the top of the screen.
// Its position lives on the entity's Object; only Y is animated.
type NoteData struct {
	ID    string
	Glyph config.Glyph
	Fall  *gween.Tween
}

var Note = donburi.NewComponentType[NoteData]()
