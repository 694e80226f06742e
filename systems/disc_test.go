package systems

import (
	"math"
	"testing"

	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscSpinsOnlyWhilePlaying(t *testing.T) {
	e := newTestECS()
	disc := CreateDisc(e, nil)
	sprite := components.Sprite.Get(disc)

	AdvanceDisc(e, 1)
	assert.Zero(t, sprite.Rotation, "idle disc must not turn")

	GetOrCreatePlayback(e).Playing = true
	AdvanceDisc(e, cfg.Layout.DiscSpinSeconds/4)
	assert.InDelta(t, math.Pi/2, sprite.Rotation, 1e-3)

	GetOrCreatePlayback(e).Playing = false
	AdvanceDisc(e, 1)
	assert.InDelta(t, math.Pi/2, sprite.Rotation, 1e-3, "stopping holds the angle")
}

func TestDiscSpinWraps(t *testing.T) {
	e := newTestECS()
	disc := CreateDisc(e, nil)
	GetOrCreatePlayback(e).Playing = true

	AdvanceDisc(e, cfg.Layout.DiscSpinSeconds)
	AdvanceDisc(e, cfg.Layout.DiscSpinSeconds/2)
	assert.InDelta(t, math.Pi, components.Sprite.Get(disc).Rotation, 1e-3)
}

func TestPlaceSprite(t *testing.T) {
	e := newTestECS()
	CreateDisc(e, nil)
	cover := CreateCover(e, nil)

	PlaceSprite(e, tags.Cover, 10, 20, 300, 300)

	obj := components.Object.Get(cover)
	assert.Equal(t, 10.0, obj.X)
	assert.Equal(t, 20.0, obj.Y)
	assert.Equal(t, 300.0, obj.W)
	assert.Equal(t, 300.0, obj.H)

	disc, ok := tags.Disc.First(e.World)
	require.True(t, ok)
	assert.Zero(t, components.Object.Get(disc).W, "placing the cover must not move the disc")
}
