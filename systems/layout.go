package systems

import (
	"math"

	"github.com/automoto/notedrop/archetypes"
	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/yohamta/donburi/ecs"
)

// ComputeLayout derives orientation and element sizes from the viewport.
func ComputeLayout(width, height float64) components.ViewportData {
	v := components.ViewportData{
		Width:      width,
		Height:     height,
		IsPortrait: height > width,
		DiscSize:   width * cfg.Layout.DiscRatio,
		DiscRadius: width * cfg.Layout.DiscRadiusRatio,
		InputWidth: width * cfg.Layout.InputWidthRatio,
	}

	v.ButtonWidth = width/2 - cfg.Layout.ButtonInset

	if v.IsPortrait {
		v.ImageSize = width * cfg.Layout.PortraitImageRatio
		v.StatusBar = cfg.Layout.PortraitStatusBar
	} else {
		v.ImageSize = width * cfg.Layout.LandscapeImageRatio
		v.StatusBar = cfg.Layout.LandscapeStatusBar
	}

	v.ImageScale = imageScale(v)
	return v
}

const minImageScale = 0.1

// imageScale fits the disc and cover into the height left over by the
// status bar, text input and buttons. Portrait stacks the images, landscape
// puts them side by side.
func imageScale(v components.ViewportData) float64 {
	l := cfg.Layout
	avail := v.Height - float64(l.StatusBarHeight) - 2*float64(l.ContentPadding)

	spacing := float64(l.InputMargin)
	fixed := float64(l.InputHeight) + 2*spacing
	var images float64
	if v.IsPortrait {
		fixed += 2*float64(l.ButtonHeight) + 2*float64(l.ButtonMargin)
		images = v.DiscSize + v.ImageSize + spacing
	} else {
		fixed += float64(l.ButtonHeight)
		images = math.Max(v.DiscSize, v.ImageSize)
	}

	if images <= 0 {
		return 1
	}
	scale := (avail - fixed) / images
	return math.Max(minImageScale, math.Min(1, scale))
}

// UpdateViewport recomputes the layout for a new window size and reports
// whether anything changed.
func UpdateViewport(e *ecs.ECS, width, height int) bool {
	v := GetOrCreateViewport(e)
	if v.Width == float64(width) && v.Height == float64(height) {
		return false
	}

	*v = ComputeLayout(float64(width), float64(height))
	resizeNoteSpace(e, width, height)
	return true
}

// GetOrCreateViewport returns the singleton Viewport component, creating it
// from the configured window size if needed.
func GetOrCreateViewport(e *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(e.World)
	if !ok {
		entry = archetypes.Viewport.Spawn(e)
		components.Viewport.SetValue(entry, ComputeLayout(float64(cfg.C.Width), float64(cfg.C.Height)))
	}
	return components.Viewport.Get(entry)
}
