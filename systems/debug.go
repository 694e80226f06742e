package systems

import (
	"image/color"

	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var spriteQuery = donburi.NewQuery(filter.Contains(components.Sprite, components.Object))

// DrawDebugBounds outlines every note in the note space and the image slots.
func DrawDebugBounds(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvNote) {
				c = color.RGBA{255, 220, 0, 255} // Yellow
			}
			drawOutline(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	spriteQuery.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		c := color.RGBA{0, 255, 0, 255} // Green
		if entry.HasComponent(tags.Disc) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}
		drawOutline(screen, obj.X, obj.Y, obj.W, obj.H, c)
	})
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.DrawFilledRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.DrawFilledRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
