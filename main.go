package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/notedrop/assets"
	"github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/fonts"
	"github.com/automoto/notedrop/logging"
	"github.com/automoto/notedrop/playback"
	"github.com/automoto/notedrop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
	Close() error
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rect(0, 0, config.C.Width, config.C.Height),
		scene:  scene,
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		l := logging.For("main")
		if err := g.scene.Close(); err != nil {
			l.Warn().Err(err).Msg("release on exit failed")
		}
		l.Info().Msg("window closed")
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so orientation tracks the outside size.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.bounds.Dx() || height != g.bounds.Dy() {
		g.bounds = image.Rect(0, 0, width, height)
		g.scene.Resize(width, height)
	}
	return width, height
}

func loadFonts() error {
	sizes := []struct {
		name fonts.FontName
		size float64
	}{
		{fonts.Small, 12},
		{fonts.Button, config.Note.ButtonFontSize},
		{fonts.Note, config.Note.FontSize},
	}
	if err := fonts.LoadFont(fonts.Regular, goregular.TTF); err != nil {
		return err
	}
	for _, f := range sizes {
		if err := fonts.LoadFontWithSize(f.name, goregular.TTF, f.size); err != nil {
			return err
		}
	}
	return nil
}

func newController() (*playback.Controller, error) {
	audioLoader := assets.NewAudioLoader(audio.NewContext(config.Audio.SampleRate))
	for _, path := range config.Sound.Paths() {
		if err := audioLoader.Preload(path); err != nil {
			return nil, errors.Wrapf(err, "preload %s", path)
		}
	}
	loader := playback.NewEbitenLoader(audioLoader, config.Audio.Volume)
	return playback.NewController(loader), nil
}

func run() error {
	flag.IntVar(&config.C.Width, "width", config.C.Width, "initial window width")
	flag.IntVar(&config.C.Height, "height", config.C.Height, "initial window height")
	flag.StringVar(&config.Debug.LogLevel, "log-level", config.Debug.LogLevel, "log level (trace, debug, info, warn, error)")
	flag.StringVar(&config.Debug.AssetDir, "assets", "", "directory overlaid on the embedded assets")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "draw the debug overlay")
	flag.Parse()

	if err := logging.InitConsole(config.Debug.LogLevel); err != nil {
		return err
	}
	l := logging.For("main")

	if config.Debug.AssetDir != "" {
		if err := assets.SetOverlayDir(config.Debug.AssetDir); err != nil {
			return err
		}
		l.Info().Str("dir", config.Debug.AssetDir).Msg("asset overlay enabled")
	}

	if err := loadFonts(); err != nil {
		return err
	}

	controller, err := newController()
	if err != nil {
		return err
	}

	scene, err := scenes.NewMusicScene(controller, assets.NewImageLoader())
	if err != nil {
		_ = controller.Close()
		return err
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	l.Info().Int("width", config.C.Width).Int("height", config.C.Height).Msg("starting")
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		_ = scene.Close()
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		l := logging.For("main")
		l.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}
