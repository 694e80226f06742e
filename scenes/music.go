package scenes

import (
	"image"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/notedrop/assets"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/logging"
	"github.com/automoto/notedrop/playback"
	"github.com/automoto/notedrop/systems"
	"github.com/automoto/notedrop/tags"
	"github.com/automoto/notedrop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MusicScene is the single screen: two glyph buttons that swap the playing
// sound, notes falling for every press, and the decorative disc and cover.
type MusicScene struct {
	ecs        *ecs.ECS
	screenUI   *ui.ScreenUI
	controller *playback.Controller
	images     *assets.ImageLoader
	rng        *rand.Rand
	once       sync.Once

	width, height int
}

// NewMusicScene creates the scene. The controller is owned by the scene and
// released by Close.
func NewMusicScene(controller *playback.Controller, images *assets.ImageLoader) (*MusicScene, error) {
	ms := &MusicScene{
		controller: controller,
		images:     images,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		width:      cfg.C.Width,
		height:     cfg.C.Height,
	}

	screenUI, err := ui.NewScreenUI(ms.press, ms.textChanged)
	if err != nil {
		return nil, err
	}
	ms.screenUI = screenUI
	return ms, nil
}

// Resize records the outside size reported by the window. The layout is
// recomputed on the next Update.
func (ms *MusicScene) Resize(width, height int) {
	ms.width, ms.height = width, height
}

func (ms *MusicScene) Update() {
	ms.once.Do(ms.configure)

	systems.UpdateViewport(ms.ecs, ms.width, ms.height)
	v := systems.GetOrCreateViewport(ms.ecs)

	// Build before Update so the slots have their rectangles this frame
	ms.screenUI.Build(*v, ms.screenUI.InputFocused())
	ms.screenUI.Update()
	systems.SetInputFocus(ms.ecs, ms.screenUI.InputFocused())

	ms.ecs.Update()

	if systems.GetAction(systems.GetOrCreateInput(ms.ecs), cfg.ActionBlurInput).JustPressed {
		ms.screenUI.BlurInput()
	}

	ms.placeSprites()
}

func (ms *MusicScene) Draw(screen *ebiten.Image) {
	if ms.ecs == nil {
		return
	}

	ms.ecs.DrawLayer(cfg.LayerBackground, screen)
	ms.screenUI.Draw(screen)
	ms.ecs.DrawLayer(cfg.LayerDisc, screen)
	ms.ecs.DrawLayer(cfg.LayerNotes, screen)
	ms.ecs.DrawLayer(cfg.LayerOverlay, screen)
}

// Close stops the playback worker and releases the loaded sound.
func (ms *MusicScene) Close() error {
	return ms.controller.Close()
}

func (ms *MusicScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must be read before anything acts on it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdatePlayback(ms.controller.Events()))
	ecs.AddSystem(systems.NewUpdatePressKeys(ms.controller, ms.rng))
	ecs.AddSystem(systems.UpdateRotate)
	ecs.AddSystem(systems.UpdateNotes)
	ecs.AddSystem(systems.UpdateDisc)

	ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	ecs.AddRenderer(cfg.LayerNotes, systems.DrawNotes)
	ecs.AddRenderer(cfg.LayerDisc, systems.DrawCover)
	ecs.AddRenderer(cfg.LayerDisc, systems.DrawDisc)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebugBounds)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebugOverlay)

	ms.ecs = ecs

	systems.GetOrCreateViewport(ms.ecs)
	systems.GetOrCreateNoteSpace(ms.ecs)
	systems.GetOrCreatePlayback(ms.ecs)
	systems.GetOrCreateInput(ms.ecs)

	log := logging.For("scene")
	systems.CreateDisc(ms.ecs, ms.loadImage(assets.DiscImage, log))
	systems.CreateCover(ms.ecs, ms.loadImage(assets.CoverImage, log))
}

// loadImage returns nil when the image is missing; the slot is left empty.
func (ms *MusicScene) loadImage(path string, log zerolog.Logger) *ebiten.Image {
	img, err := ms.images.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("image unavailable")
		return nil
	}
	return img
}

func (ms *MusicScene) press(g cfg.Glyph) {
	systems.HandlePress(ms.ecs, ms.controller, g, ms.rng)
}

func (ms *MusicScene) textChanged(text string) {
	systems.SetInputText(ms.ecs, text)
}

func (ms *MusicScene) placeSprites() {
	placeRect(ms.ecs, tags.Disc, ms.screenUI.DiscRect())
	placeRect(ms.ecs, tags.Cover, ms.screenUI.CoverRect())
}

func placeRect(e *ecs.ECS, t donburi.IComponentType, r image.Rectangle) {
	systems.PlaceSprite(e, t, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}
