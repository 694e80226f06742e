package systems

import (
	"math/rand/v2"

	"github.com/automoto/notedrop/archetypes"
	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/logging"
	"github.com/automoto/notedrop/playback"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Presser is the audio half of a button press.
type Presser interface {
	Press(glyph cfg.Glyph) error
}

// HandlePress spawns a note for glyph and hands the sound change to p.
// The note is spawned even when the audio request is rejected.
func HandlePress(e *ecs.ECS, p Presser, glyph cfg.Glyph, rng *rand.Rand) *donburi.Entry {
	note := SpawnNote(e, glyph, rng)

	pb := GetOrCreatePlayback(e)
	pb.Presses++
	if err := p.Press(glyph); err != nil {
		l := logging.For("playback")
		l.Warn().Err(err).Str("glyph", string(glyph)).Msg("press not queued")
		pb.LastError = err
	}
	return note
}

// NewUpdatePlayback returns a system that drains playback events without
// blocking and mirrors them into the Playback component.
func NewUpdatePlayback(events <-chan playback.Event) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		pb := GetOrCreatePlayback(e)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				ApplyPlaybackEvent(pb, ev)
			default:
				return
			}
		}
	}
}

// ApplyPlaybackEvent folds one worker event into the UI-side playback state.
func ApplyPlaybackEvent(pb *components.PlaybackData, ev playback.Event) {
	switch ev.Kind {
	case playback.EventLoaded:
		pb.NowPlaying = ev.Glyph
		pb.Playing = false
	case playback.EventPlaying:
		pb.NowPlaying = ev.Glyph
		pb.Playing = true
		pb.LastError = nil
	case playback.EventReleased:
		if pb.NowPlaying == ev.Glyph {
			pb.NowPlaying = cfg.GlyphNone
			pb.Playing = false
		}
	case playback.EventFailed, playback.EventSkipped:
		pb.LastError = ev.Err
	}
}

// GetOrCreatePlayback returns the singleton Playback component for this ECS, creating it if needed
func GetOrCreatePlayback(e *ecs.ECS) *components.PlaybackData {
	entry, ok := components.Playback.First(e.World)
	if !ok {
		entry = archetypes.Playback.Spawn(e)
	}
	return components.Playback.Get(entry)
}
