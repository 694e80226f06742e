package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image    *ebiten.Image
	Rotation float64
	PivotX   float64
	PivotY   float64
}

var Sprite = donburi.NewComponentType[SpriteData]()

// SpinData turns a sprite through one full revolution per tween cycle
type SpinData struct {
	Turn *gween.Tween
}

var Spin = donburi.NewComponentType[SpinData]()
