package systems

import (
	"testing"

	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/playback"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresser struct {
	glyphs []cfg.Glyph
	err    error
}

func (p *fakePresser) Press(g cfg.Glyph) error {
	p.glyphs = append(p.glyphs, g)
	return p.err
}

func TestHandlePressCountsAndForwards(t *testing.T) {
	e := newTestECS()
	p := &fakePresser{}
	rng := newTestRand()

	HandlePress(e, p, cfg.GlyphA, rng)
	HandlePress(e, p, cfg.GlyphB, rng)

	assert.Equal(t, []cfg.Glyph{cfg.GlyphA, cfg.GlyphB}, p.glyphs)
	assert.Equal(t, 2, GetOrCreatePlayback(e).Presses)
	assert.Nil(t, GetOrCreatePlayback(e).LastError)
}

func TestHandlePressRejectedStillSpawnsNote(t *testing.T) {
	e := newTestECS()
	p := &fakePresser{err: playback.ErrClosed}

	HandlePress(e, p, cfg.GlyphA, newTestRand())

	assert.Equal(t, 1, NoteCount(e))
	assert.True(t, errors.Is(GetOrCreatePlayback(e).LastError, playback.ErrClosed))
}

func TestApplyPlaybackEvent(t *testing.T) {
	failure := errors.New("boom")

	tests := []struct {
		name   string
		start  components.PlaybackData
		event  playback.Event
		expect components.PlaybackData
	}{
		{
			name:   "loaded",
			event:  playback.Event{Kind: playback.EventLoaded, Glyph: cfg.GlyphA},
			expect: components.PlaybackData{NowPlaying: cfg.GlyphA},
		},
		{
			name:   "playing clears error",
			start:  components.PlaybackData{NowPlaying: cfg.GlyphA, LastError: failure},
			event:  playback.Event{Kind: playback.EventPlaying, Glyph: cfg.GlyphA},
			expect: components.PlaybackData{NowPlaying: cfg.GlyphA, Playing: true},
		},
		{
			name:   "released current",
			start:  components.PlaybackData{NowPlaying: cfg.GlyphA, Playing: true},
			event:  playback.Event{Kind: playback.EventReleased, Glyph: cfg.GlyphA},
			expect: components.PlaybackData{},
		},
		{
			name:   "released stale glyph",
			start:  components.PlaybackData{NowPlaying: cfg.GlyphB, Playing: true},
			event:  playback.Event{Kind: playback.EventReleased, Glyph: cfg.GlyphA},
			expect: components.PlaybackData{NowPlaying: cfg.GlyphB, Playing: true},
		},
		{
			name:   "failed",
			start:  components.PlaybackData{NowPlaying: cfg.GlyphA, Playing: true},
			event:  playback.Event{Kind: playback.EventFailed, Glyph: cfg.GlyphB, Err: failure},
			expect: components.PlaybackData{NowPlaying: cfg.GlyphA, Playing: true, LastError: failure},
		},
		{
			name:   "skipped",
			event:  playback.Event{Kind: playback.EventSkipped, Glyph: cfg.Glyph("?"), Err: failure},
			expect: components.PlaybackData{LastError: failure},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := tt.start
			ApplyPlaybackEvent(&pb, tt.event)
			assert.Equal(t, tt.expect, pb)
		})
	}
}

func TestUpdatePlaybackDrainsWithoutBlocking(t *testing.T) {
	e := newTestECS()
	events := make(chan playback.Event, 4)
	update := NewUpdatePlayback(events)

	// Nothing queued must not block
	update(e)

	events <- playback.Event{Kind: playback.EventLoaded, Glyph: cfg.GlyphA}
	events <- playback.Event{Kind: playback.EventPlaying, Glyph: cfg.GlyphA}
	update(e)

	pb := GetOrCreatePlayback(e)
	assert.Equal(t, cfg.GlyphA, pb.NowPlaying)
	assert.True(t, pb.Playing)

	events <- playback.Event{Kind: playback.EventReleased, Glyph: cfg.GlyphA}
	close(events)
	update(e)
	update(e)
	assert.Equal(t, cfg.GlyphNone, GetOrCreatePlayback(e).NowPlaying)
}

func TestHandlePressWithController(t *testing.T) {
	e := newTestECS()
	loader := playback.LoaderFunc(func(path string) (playback.Sound, error) {
		return nopSound{}, nil
	})
	c := playback.NewController(loader)
	t.Cleanup(func() { _ = c.Close() })

	HandlePress(e, c, cfg.GlyphB, newTestRand())
	require.NoError(t, c.Sync())
	NewUpdatePlayback(c.Events())(e)

	pb := GetOrCreatePlayback(e)
	assert.Equal(t, cfg.GlyphB, pb.NowPlaying)
	assert.True(t, pb.Playing)
	assert.Equal(t, 1, NoteCount(e))
}

type nopSound struct{}

func (nopSound) Play() error   { return nil }
func (nopSound) Stop() error   { return nil }
func (nopSound) Unload() error { return nil }
