// Package playback owns the single loaded sound of the screen. Requests are
// handled one at a time, in the order they were issued, by a worker goroutine
// so the UI tick never waits on the audio device.
package playback

import (
	"fmt"

	"github.com/automoto/notedrop/config"
	"github.com/pkg/errors"
)

// Sound is a loaded audio resource.
type Sound interface {
	Play() error
	Stop() error
	// Unload releases the underlying resource. The Sound is unusable afterwards.
	Unload() error
}

// Loader turns an asset path into a loaded Sound.
type Loader interface {
	Load(path string) (Sound, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (Sound, error)

func (f LoaderFunc) Load(path string) (Sound, error) { return f(path) }

var (
	ErrUnknownGlyph = errors.New("no sound bound to glyph")
	ErrLoad         = errors.New("audio load failed")
	ErrStop         = errors.New("audio stop failed")
	ErrPlay         = errors.New("audio play failed")
	ErrUnload       = errors.New("audio unload failed")
	ErrClosed       = errors.New("playback controller closed")
)

// Failure is a recoverable audio error. Kind is one of the Err* sentinels.
type Failure struct {
	Kind  error
	Glyph config.Glyph
	Err   error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%v (%s)", f.Kind, f.Glyph)
	}
	return fmt.Sprintf("%v (%s): %v", f.Kind, f.Glyph, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

func (f *Failure) Is(target error) bool { return target == f.Kind }

func fail(kind error, g config.Glyph, err error) *Failure {
	return &Failure{Kind: kind, Glyph: g, Err: err}
}
