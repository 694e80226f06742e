package assets

import (
	"bytes"
	"io"
	"sync"

	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
)

// AudioFormat is a container format the loader can decode
type AudioFormat string

const (
	FormatUnknown AudioFormat = ""
	FormatWAV     AudioFormat = "wav"
	FormatOgg     AudioFormat = "ogg"
	FormatMP3     AudioFormat = "mp3"
)

// ErrUnsupportedFormat is returned for audio data that is not wav, ogg or mp3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DetectAudioFormat sniffs the container format from the data's magic bytes.
func DetectAudioFormat(data []byte) (AudioFormat, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return FormatUnknown, errors.Wrap(err, "sniff audio format")
	}

	switch AudioFormat(kind.Extension) {
	case FormatWAV, FormatOgg, FormatMP3:
		return AudioFormat(kind.Extension), nil
	}
	return FormatUnknown, errors.Wrapf(ErrUnsupportedFormat, "detected %q", kind.MIME.Value)
}

// AudioLoader handles loading and caching of audio assets.
// It is safe for use from the playback worker and the UI goroutine.
type AudioLoader struct {
	mu      sync.Mutex
	cache   map[string][]byte // decoded PCM keyed by asset path
	context *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		cache:   make(map[string][]byte),
		context: ctx,
	}
}

// Preload decodes an asset and caches it without creating a player.
func (l *AudioLoader) Preload(path string) error {
	_, err := l.decoded(path)
	return err
}

// Load returns a new player for the asset at path. Each call creates an
// independent player; the caller owns it and must Close it.
func (l *AudioLoader) Load(path string) (*audio.Player, error) {
	pcm, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(pcm), nil
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if pcm, ok := l.cache[path]; ok {
		return pcm, nil
	}

	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	pcm, err := decode(l.context.SampleRate(), data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	l.cache[path] = pcm
	return pcm, nil
}

func decode(sampleRate int, data []byte) ([]byte, error) {
	format, err := DetectAudioFormat(data)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	switch format {
	case FormatWAV:
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case FormatOgg:
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case FormatMP3:
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", format)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "read decoded %s", format)
	}
	return pcm, nil
}
