package ui

import (
	"bytes"
	"image"

	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/logging"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

const inputFontSize = 18

// layoutKey identifies the inputs a widget tree was built from. The tree is
// rebuilt only when it changes.
type layoutKey struct {
	width, height int
	lifted        bool
}

// ScreenUI holds the ebitenui widgets of the music screen: the disc and
// cover slots, the text field and the two glyph buttons.
type ScreenUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPress       func(cfg.Glyph)
	OnTextChanged func(string)

	input     *widget.TextInput
	discSlot  *widget.Container
	coverSlot *widget.Container

	buttonFace text.Face
	inputFace  text.Face

	key   layoutKey
	built bool
}

// NewScreenUI loads the UI faces. Call Build before the first Update.
func NewScreenUI(onPress func(cfg.Glyph), onTextChanged func(string)) (*ScreenUI, error) {
	s := &ScreenUI{
		OnPress:       onPress,
		OnTextChanged: onTextChanged,
	}
	if err := s.loadFonts(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ScreenUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return errors.Wrap(err, "load ui font")
	}

	s.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Note.ButtonFontSize,
	}
	s.inputFace = &text.GoTextFace{
		Source: fontSource,
		Size:   inputFontSize,
	}
	return nil
}

// Build lays the widgets out for viewport v. lifted pushes the content up by
// the keyboard offset while the text field has focus. The text and focus of
// the field survive a rebuild. Reports whether the tree was rebuilt.
func (s *ScreenUI) Build(v components.ViewportData, lifted bool) bool {
	key := layoutKey{width: int(v.Width), height: int(v.Height), lifted: lifted}
	if s.built && key == s.key {
		return false
	}

	var prevText string
	var focused bool
	if s.input != nil {
		prevText = s.input.GetText()
		focused = s.input.IsFocused()
	}

	s.buildUI(v, lifted)
	s.key = key
	s.built = true

	if prevText != "" {
		s.input.SetText(prevText)
	}
	if focused {
		s.input.Focus(true)
	}

	l := logging.For("ui")
	l.Debug().Int("width", key.width).Int("height", key.height).Bool("portrait", v.IsPortrait).Bool("lifted", lifted).Msg("layout rebuilt")
	return true
}

func (s *ScreenUI) buildUI(v components.ViewportData, lifted bool) {
	l := cfg.Layout

	// The content column is centred, so lifting it by KeyboardOffset needs
	// twice that much extra bottom padding.
	bottom := l.ContentPadding
	if lifted {
		bottom += 2 * l.KeyboardOffset
	}

	// Root container with AnchorLayout; the status bar is drawn underneath
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{
				Top:    l.StatusBarHeight + l.ContentPadding,
				Bottom: bottom,
				Left:   l.ContentPadding,
				Right:  l.ContentPadding,
			}),
		)),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(l.InputMargin),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(s.buildImagesContainer(v))
	contentContainer.AddChild(s.buildInput(v))
	contentContainer.AddChild(s.buildButtonsContainer(v))

	rootContainer.AddChild(contentContainer)

	s.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildImagesContainer reserves the disc and cover slots. The sprites
// themselves are drawn by the ECS renderers into the slot rectangles.
func (s *ScreenUI) buildImagesContainer(v components.ViewportData) *widget.Container {
	direction := widget.DirectionVertical
	if !v.IsPortrait {
		direction = widget.DirectionHorizontal
	}

	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(direction),
			widget.RowLayoutOpts.Spacing(cfg.Layout.InputMargin),
		)),
		widget.ContainerOpts.WidgetOpts(centered()),
	)

	disc := int(v.DiscSize * v.ImageScale)
	cover := int(v.ImageSize * v.ImageScale)

	s.discSlot = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(disc, disc),
			centered(),
		),
	)
	s.coverSlot = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cover, cover),
			centered(),
		),
	)
	container.AddChild(s.discSlot)
	container.AddChild(s.coverSlot)
	return container
}

func (s *ScreenUI) buildInput(v components.ViewportData) *widget.TextInput {
	l := cfg.Layout
	s.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(v.InputWidth), l.InputHeight),
			centered(),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     eimage.NewBorderedNineSliceColor(l.InputBackground, l.InputBorder, 1),
			Disabled: eimage.NewNineSliceColor(l.InputBackground),
		}),
		widget.TextInputOpts.Face(&s.inputFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          l.TextColor,
			Disabled:      l.PlaceholderColor,
			Caret:         l.TextColor,
			DisabledCaret: l.PlaceholderColor,
		}),
		widget.TextInputOpts.Placeholder(l.Placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(l.ContentPadding)),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			if s.OnTextChanged != nil {
				s.OnTextChanged(args.InputText)
			}
		}),
	)
	return s.input
}

func (s *ScreenUI) buildButtonsContainer(v components.ViewportData) *widget.Container {
	l := cfg.Layout
	direction := widget.DirectionVertical
	if !v.IsPortrait {
		direction = widget.DirectionHorizontal
	}

	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(direction),
			widget.RowLayoutOpts.Spacing(2*l.ButtonMargin),
		)),
		widget.ContainerOpts.WidgetOpts(centered()),
	)

	for _, g := range cfg.Glyphs {
		container.AddChild(s.buildGlyphButton(v, g))
	}
	return container
}

func (s *ScreenUI) buildGlyphButton(v components.ViewportData, g cfg.Glyph) *widget.Button {
	l := cfg.Layout
	glyph := g // Capture for closure
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(v.ButtonWidth), l.ButtonHeight),
			centered(),
		),
		widget.ButtonOpts.Image(s.buttonImage()),
		widget.ButtonOpts.Text(string(glyph), &s.buttonFace, &widget.ButtonTextColor{
			Idle:    l.TextColor,
			Hover:   l.TextColor,
			Pressed: cfg.LightGray,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.OnPress != nil {
				s.OnPress(glyph)
			}
		}),
	)
}

func (s *ScreenUI) buttonImage() *widget.ButtonImage {
	l := cfg.Layout
	return &widget.ButtonImage{
		Idle:    eimage.NewNineSliceColor(l.ButtonColor),
		Hover:   eimage.NewNineSliceColor(l.ButtonHover),
		Pressed: eimage.NewNineSliceColor(l.ButtonPressed),
	}
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})
}

// Update calls the UI's Update method
func (s *ScreenUI) Update() {
	s.UI.Update()
}

// Draw renders the widget tree.
func (s *ScreenUI) Draw(screen *ebiten.Image) {
	s.UI.Draw(screen)
}

// InputFocused reports whether the text field has keyboard focus.
func (s *ScreenUI) InputFocused() bool {
	return s.input != nil && s.input.IsFocused()
}

// BlurInput drops keyboard focus from the text field.
func (s *ScreenUI) BlurInput() {
	if s.input != nil {
		s.input.Focus(false)
	}
}

// InputText returns the current contents of the text field.
func (s *ScreenUI) InputText() string {
	if s.input == nil {
		return ""
	}
	return s.input.GetText()
}

// DiscRect is the screen rectangle reserved for the disc.
func (s *ScreenUI) DiscRect() image.Rectangle {
	if s.discSlot == nil {
		return image.Rectangle{}
	}
	return s.discSlot.GetWidget().Rect
}

// CoverRect is the screen rectangle reserved for the cover image.
func (s *ScreenUI) CoverRect() image.Rectangle {
	if s.coverSlot == nil {
		return image.Rectangle{}
	}
	return s.coverSlot.GetWidget().Rect
}
