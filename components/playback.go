package components

import (
	"github.com/automoto/notedrop/config"
	"github.com/yohamta/donburi"
)

// PlaybackData mirrors the playback worker's outcomes on the UI side
// (singleton component)
type PlaybackData struct {
	NowPlaying config.Glyph
	Playing    bool
	Presses    int
	LastError  error
}

var Playback = donburi.NewComponentType[PlaybackData]()
