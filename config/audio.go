package config

// Glyph is the symbol shown on a button and on the notes it spawns
type Glyph string

const (
	GlyphNone Glyph = ""
	GlyphA    Glyph = "♪"
	GlyphB    Glyph = "♫"
)

// Glyphs lists the supported glyphs in button order
var Glyphs = []Glyph{GlyphA, GlyphB}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64
	EventQueue int // buffered playback events between the worker and the screen
}

// SoundConfig maps glyphs to bundled audio assets
type SoundConfig struct {
	assets map[Glyph]string
}

// AssetFor returns the asset path bound to g.
func (s SoundConfig) AssetFor(g Glyph) (string, bool) {
	path, ok := s.assets[g]
	return path, ok
}

// Paths returns every bound asset path.
func (s SoundConfig) Paths() []string {
	paths := make([]string, 0, len(s.assets))
	for _, g := range Glyphs {
		if p, ok := s.assets[g]; ok {
			paths = append(paths, p)
		}
	}
	return paths
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     1.0,
		EventQueue: 32,
	}

	Sound = SoundConfig{
		assets: map[Glyph]string{
			GlyphA: "audio/note_a.wav",
			GlyphB: "audio/note_b.wav",
		},
	}
}
