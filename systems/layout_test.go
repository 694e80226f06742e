package systems

import (
	"testing"

	cfg "github.com/automoto/notedrop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		portrait      bool
		imageSize     float64
		statusBar     cfg.StatusBarStyle
	}{
		{"portrait phone", 420, 760, true, 315, cfg.Layout.PortraitStatusBar},
		{"landscape phone", 760, 420, false, 304, cfg.Layout.LandscapeStatusBar},
		{"square is landscape", 500, 500, false, 200, cfg.Layout.LandscapeStatusBar},
		{"one pixel taller", 500, 501, true, 375, cfg.Layout.PortraitStatusBar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ComputeLayout(tt.width, tt.height)
			assert.Equal(t, tt.portrait, v.IsPortrait)
			assert.InDelta(t, tt.imageSize, v.ImageSize, 1e-9)
			assert.Equal(t, tt.statusBar, v.StatusBar)
			assert.InDelta(t, tt.width/2-20, v.ButtonWidth, 1e-9)
			assert.InDelta(t, tt.width*0.5, v.DiscSize, 1e-9)
			assert.InDelta(t, tt.width*0.25, v.DiscRadius, 1e-9)
			assert.InDelta(t, tt.width*0.92, v.InputWidth, 1e-9)
			assert.Equal(t, tt.width, v.Width)
			assert.Equal(t, tt.height, v.Height)
		})
	}
}

func TestStatusBarStyles(t *testing.T) {
	portrait := ComputeLayout(420, 760).StatusBar
	assert.Equal(t, cfg.BarDarkContent, portrait.Content)
	assert.Equal(t, cfg.SteelBlue, portrait.Background)

	landscape := ComputeLayout(760, 420).StatusBar
	assert.Equal(t, cfg.BarLightContent, landscape.Content)
	assert.Equal(t, cfg.Emerald, landscape.Background)
}

func TestImageScaleBounds(t *testing.T) {
	sizes := [][2]float64{
		{420, 760}, {760, 420}, {100, 100}, {2000, 200}, {300, 4000}, {1, 1},
	}
	for _, s := range sizes {
		v := ComputeLayout(s[0], s[1])
		assert.GreaterOrEqual(t, v.ImageScale, minImageScale, "%vx%v", s[0], s[1])
		assert.LessOrEqual(t, v.ImageScale, 1.0, "%vx%v", s[0], s[1])
	}

	assert.Equal(t, 1.0, ComputeLayout(300, 4000).ImageScale, "tall viewport fits at nominal size")
	assert.Equal(t, minImageScale, ComputeLayout(2000, 200).ImageScale, "short wide viewport clamps")
	assert.Less(t, ComputeLayout(760, 420).ImageScale, 1.0, "landscape phone shrinks images")
}

func TestUpdateViewport(t *testing.T) {
	e := newTestECS()
	v := GetOrCreateViewport(e)
	assert.Equal(t, float64(cfg.C.Width), v.Width)
	assert.Equal(t, float64(cfg.C.Height), v.Height)

	assert.False(t, UpdateViewport(e, cfg.C.Width, cfg.C.Height))

	require.True(t, UpdateViewport(e, 760, 420))
	v = GetOrCreateViewport(e)
	assert.False(t, v.IsPortrait)
	assert.Equal(t, 760.0, v.Width)

	require.True(t, UpdateViewport(e, 420, 760))
	assert.True(t, GetOrCreateViewport(e).IsPortrait)
}
