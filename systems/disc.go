package systems

import (
	"math"

	"github.com/automoto/notedrop/archetypes"
	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// CreateDisc spawns the decorative disc. It spins while a sound is playing.
func CreateDisc(e *ecs.ECS, img *ebiten.Image) *donburi.Entry {
	disc := archetypes.Disc.Spawn(e)
	components.Sprite.SetValue(disc, components.SpriteData{Image: img})
	components.Spin.SetValue(disc, components.SpinData{
		Turn: gween.New(0, 2*math.Pi, cfg.Layout.DiscSpinSeconds, ease.Linear),
	})
	components.Object.SetValue(disc, components.ObjectData{Object: resolv.NewObject(0, 0, 0, 0)})
	return disc
}

// CreateCover spawns the static cover image.
func CreateCover(e *ecs.ECS, img *ebiten.Image) *donburi.Entry {
	cover := archetypes.Cover.Spawn(e)
	components.Sprite.SetValue(cover, components.SpriteData{Image: img})
	components.Object.SetValue(cover, components.ObjectData{Object: resolv.NewObject(0, 0, 0, 0)})
	return cover
}

// PlaceSprite moves the sprite tagged t to the given rectangle.
func PlaceSprite(e *ecs.ECS, t donburi.IComponentType, x, y, w, h float64) {
	entry, ok := donburi.NewQuery(filter.Contains(t, components.Object)).First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
}

// UpdateDisc spins the disc by one tick.
func UpdateDisc(e *ecs.ECS) {
	AdvanceDisc(e, 1/float32(ebiten.TPS()))
}

// AdvanceDisc spins the disc dt seconds while a sound is playing.
func AdvanceDisc(e *ecs.ECS, dt float32) {
	if !GetOrCreatePlayback(e).Playing {
		return
	}
	entry, ok := tags.Disc.First(e.World)
	if !ok {
		return
	}

	spin := components.Spin.Get(entry)
	angle, done := spin.Turn.Update(dt)
	components.Sprite.Get(entry).Rotation = float64(angle)
	if done {
		spin.Turn.Reset()
	}
}
