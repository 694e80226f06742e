package playback

import (
	"sync"

	"github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/logging"
	"github.com/rs/zerolog"
)

// EventKind describes a playback outcome reported to the screen
type EventKind int

const (
	EventLoaded EventKind = iota
	EventPlaying
	EventReleased
	EventFailed
	EventSkipped
)

func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventPlaying:
		return "playing"
	case EventReleased:
		return "released"
	case EventFailed:
		return "failed"
	case EventSkipped:
		return "skipped"
	}
	return "unknown"
}

// Event is published by the worker after each step of a request.
// Err is a *Failure for EventFailed and EventSkipped.
type Event struct {
	Kind  EventKind
	Glyph config.Glyph
	Err   error
}

type requestKind int

const (
	requestPress requestKind = iota
	requestSync
	requestClose
)

type request struct {
	kind  requestKind
	glyph config.Glyph
	done  chan struct{}
}

// Controller serialises stop -> unload -> load -> play for every press and
// guarantees at most one loaded Sound at any time.
type Controller struct {
	loader  Loader
	resolve func(config.Glyph) (string, bool)
	log     zerolog.Logger
	events  chan Event

	cond       *sync.Cond
	pending    []request
	closed     bool
	nowPlaying config.Glyph

	stopped  chan struct{}
	closeErr error

	// Owned by the worker goroutine.
	current      Sound
	currentGlyph config.Glyph
}

// Option configures a Controller
type Option func(*Controller)

// WithResolver replaces the glyph -> asset path lookup (config.Sound by default).
func WithResolver(fn func(config.Glyph) (string, bool)) Option {
	return func(c *Controller) { c.resolve = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithEventBuffer sets the capacity of the Events channel. Events that do not
// fit are dropped rather than blocking the worker.
func WithEventBuffer(n int) Option {
	return func(c *Controller) { c.events = make(chan Event, n) }
}

// NewController starts the playback worker.
func NewController(loader Loader, opts ...Option) *Controller {
	c := &Controller{
		loader:  loader,
		resolve: config.Sound.AssetFor,
		log:     logging.For("playback"),
		events:  make(chan Event, config.Audio.EventQueue),
		cond:    sync.NewCond(&sync.Mutex{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	go c.run()
	return c
}

// Press queues stop/unload of the current sound followed by load and play of
// the sound bound to g. It never blocks.
func (c *Controller) Press(g config.Glyph) error {
	return c.send(request{kind: requestPress, glyph: g})
}

// Sync waits until every request issued before it has been handled.
func (c *Controller) Sync() error {
	done := make(chan struct{})
	if err := c.send(request{kind: requestSync, done: done}); err != nil {
		return err
	}
	<-done
	return nil
}

// Close releases the held sound and stops the worker. Presses still queued
// are dropped. Only the first call releases anything.
func (c *Controller) Close() error {
	c.cond.L.Lock()
	if c.closed {
		c.cond.L.Unlock()
		<-c.stopped
		return nil
	}
	c.closed = true
	c.pending = append(c.pending, request{kind: requestClose})
	c.cond.Signal()
	c.cond.L.Unlock()

	<-c.stopped
	return c.closeErr
}

// Events delivers playback outcomes. It is closed when the worker exits.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// NowPlaying returns the glyph of the loaded sound, or GlyphNone.
func (c *Controller) NowPlaying() config.Glyph {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()
	return c.nowPlaying
}

func (c *Controller) send(r request) error {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.pending = append(c.pending, r)
	c.cond.Signal()
	return nil
}

func (c *Controller) run() {
	defer close(c.stopped)
	defer close(c.events)

	for {
		c.cond.L.Lock()
		for len(c.pending) == 0 {
			c.cond.Wait()
		}
		req := c.pending[0]
		c.pending = c.pending[1:]
		closing := c.closed
		c.cond.L.Unlock()

		switch req.kind {
		case requestPress:
			if closing {
				c.log.Debug().Str("glyph", string(req.glyph)).Msg("dropping press queued before close")
				continue
			}
			c.handlePress(req.glyph)
		case requestSync:
			close(req.done)
		case requestClose:
			c.closeErr = c.release()
			return
		}
	}
}

func (c *Controller) handlePress(g config.Glyph) {
	path, ok := c.resolve(g)
	if !ok {
		f := fail(ErrUnknownGlyph, g, nil)
		c.log.Debug().Str("glyph", string(g)).Msg("no sound bound, keeping current sound")
		c.publish(Event{Kind: EventSkipped, Glyph: g, Err: f})
		return
	}

	// Failures are reported by release itself; loading goes ahead regardless.
	_ = c.release()

	snd, err := c.loader.Load(path)
	if err != nil {
		f := fail(ErrLoad, g, err)
		c.log.Error().Err(err).Str("glyph", string(g)).Str("path", path).Msg("load failed")
		c.publish(Event{Kind: EventFailed, Glyph: g, Err: f})
		return
	}
	c.setCurrent(snd, g)
	c.publish(Event{Kind: EventLoaded, Glyph: g})

	if err := snd.Play(); err != nil {
		f := fail(ErrPlay, g, err)
		c.log.Error().Err(err).Str("glyph", string(g)).Msg("play failed")
		c.publish(Event{Kind: EventFailed, Glyph: g, Err: f})
		return
	}
	c.log.Debug().Str("glyph", string(g)).Str("path", path).Msg("playing")
	c.publish(Event{Kind: EventPlaying, Glyph: g})
}

// release stops and unloads the current sound. The handle is dropped before
// either call so it can never be released twice.
func (c *Controller) release() error {
	if c.current == nil {
		return nil
	}
	snd, g := c.current, c.currentGlyph
	c.setCurrent(nil, config.GlyphNone)

	var result error
	if err := snd.Stop(); err != nil {
		f := fail(ErrStop, g, err)
		c.log.Warn().Err(err).Str("glyph", string(g)).Msg("stop failed, unloading anyway")
		c.publish(Event{Kind: EventFailed, Glyph: g, Err: f})
		result = f
	}
	if err := snd.Unload(); err != nil {
		f := fail(ErrUnload, g, err)
		c.log.Warn().Err(err).Str("glyph", string(g)).Msg("unload failed")
		c.publish(Event{Kind: EventFailed, Glyph: g, Err: f})
		if result == nil {
			result = f
		}
	}
	c.publish(Event{Kind: EventReleased, Glyph: g})
	return result
}

func (c *Controller) setCurrent(snd Sound, g config.Glyph) {
	c.current, c.currentGlyph = snd, g

	c.cond.L.Lock()
	c.nowPlaying = g
	c.cond.L.Unlock()
}

func (c *Controller) publish(ev Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Debug().Str("event", ev.Kind.String()).Msg("event queue full, dropping")
	}
}
