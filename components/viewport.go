package components

import (
	"github.com/automoto/notedrop/config"
	"github.com/yohamta/donburi"
)

// ViewportData is the current window size and everything derived from it.
// It is recomputed on every resize; nothing is cached across frames.
type ViewportData struct {
	Width  float64
	Height float64

	IsPortrait  bool
	ImageSize   float64 // cover image side
	DiscSize    float64
	DiscRadius  float64
	ButtonWidth float64
	InputWidth  float64
	StatusBar   config.StatusBarStyle

	// ImageScale shrinks the decorative images when the content would not fit
	// the viewport height. 1 means nominal size.
	ImageScale float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
