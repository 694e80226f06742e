package playback

import (
	"github.com/automoto/notedrop/assets"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenLoader loads sounds through an assets.AudioLoader
type EbitenLoader struct {
	loader *assets.AudioLoader
	volume float64
}

func NewEbitenLoader(loader *assets.AudioLoader, volume float64) *EbitenLoader {
	return &EbitenLoader{loader: loader, volume: volume}
}

func (l *EbitenLoader) Load(path string) (Sound, error) {
	player, err := l.loader.Load(path)
	if err != nil {
		return nil, err
	}
	player.SetVolume(l.volume)
	return &ebitenSound{player: player}, nil
}

type ebitenSound struct {
	player *audio.Player
}

func (s *ebitenSound) Play() error {
	s.player.Play()
	return nil
}

func (s *ebitenSound) Stop() error {
	s.player.Pause()
	return s.player.SetPosition(0)
}

func (s *ebitenSound) Unload() error {
	return s.player.Close()
}
