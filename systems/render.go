package systems

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/fonts"
	"github.com/automoto/notedrop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	spriteDrawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground fills the screen and paints the status bar strip in the
// style of the current orientation.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Layout.Background)

	v := GetOrCreateViewport(e)
	barH := float32(cfg.Layout.StatusBarHeight)
	vector.DrawFilledRect(screen, 0, 0, float32(v.Width), barH, v.StatusBar.Background, false)

	if !fonts.Loaded(fonts.Small) {
		return
	}
	face := fonts.Small.Get()
	baseline := (cfg.Layout.StatusBarHeight + face.Metrics().Ascent.Ceil()) / 2

	clock := time.Now().Format("15:04")
	text.Draw(screen, clock, face, 8, baseline, statusBarContentColor(v.StatusBar.Content))

	title := cfg.C.Title
	titleW := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, int(v.Width)-titleW-8, baseline, statusBarContentColor(v.StatusBar.Content))
}

func statusBarContentColor(c cfg.BarContent) color.RGBA {
	if c == cfg.BarLightContent {
		return cfg.White
	}
	return cfg.Black
}

// DrawNotes renders every floating note glyph at its current position.
func DrawNotes(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Note) {
		return
	}
	face := fonts.Note.Get()
	ascent := face.Metrics().Ascent.Ceil()

	components.Note.Each(e.World, func(entry *donburi.Entry) {
		note := components.Note.Get(entry)
		obj := components.Object.Get(entry)
		text.Draw(screen, string(note.Glyph), face, int(obj.X), int(obj.Y)+ascent, cfg.Note.Color)
	})
}

// DrawDisc renders the disc scaled into its slot and rotated about its centre.
func DrawDisc(e *ecs.ECS, screen *ebiten.Image) {
	if entry, ok := tags.Disc.First(e.World); ok {
		drawSprite(screen, entry)
	}
}

// DrawCover renders the cover image scaled into its slot.
func DrawCover(e *ecs.ECS, screen *ebiten.Image) {
	if entry, ok := tags.Cover.First(e.World); ok {
		drawSprite(screen, entry)
	}
}

func drawSprite(screen *ebiten.Image, entry *donburi.Entry) {
	sprite := components.Sprite.Get(entry)
	obj := components.Object.Get(entry)
	if sprite.Image == nil || obj.W <= 0 || obj.H <= 0 {
		return
	}

	bounds := sprite.Image.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())

	spriteDrawOp.GeoM.Reset()
	spriteDrawOp.ColorScale.Reset()
	spriteDrawOp.Filter = ebiten.FilterLinear

	// Rotate about the image centre, then scale into the slot.
	spriteDrawOp.GeoM.Translate(-iw/2, -ih/2)
	spriteDrawOp.GeoM.Rotate(sprite.Rotation)
	spriteDrawOp.GeoM.Scale(obj.W/iw, obj.H/ih)
	spriteDrawOp.GeoM.Translate(obj.X+obj.W/2, obj.Y+obj.H/2)

	screen.DrawImage(sprite.Image, spriteDrawOp)
}

// DrawDebugOverlay prints the live note count, the text field contents and
// the last playback error. Enabled with -debug.
func DrawDebugOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	v := GetOrCreateViewport(e)
	pb := GetOrCreatePlayback(e)
	input := GetOrCreateInputText(e)

	orientation := "landscape"
	if v.IsPortrait {
		orientation = "portrait"
	}
	nowPlaying := string(pb.NowPlaying)
	if nowPlaying == "" {
		nowPlaying = "-"
	}
	lastErr := "-"
	if pb.LastError != nil {
		lastErr = pb.LastError.Error()
	}

	msg := fmt.Sprintf(
		"TPS %.0f  %dx%d %s\nnotes %d  presses %d\nplaying %s (%t)\ninput %q focused=%t\nerror %s",
		ebiten.ActualTPS(), int(v.Width), int(v.Height), orientation,
		NoteCount(e), pb.Presses,
		nowPlaying, pb.Playing,
		input.Text, input.Focused,
		lastErr,
	)

	y := cfg.Layout.StatusBarHeight + 4
	vector.DrawFilledRect(screen, 0, float32(y), float32(v.Width), 80, cfg.DimOverlay, false)
	ebitenutil.DebugPrintAt(screen, msg, 4, y)
}
