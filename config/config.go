package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	LayerBackground ecs.LayerID = iota
	LayerNotes
	LayerDisc
	LayerOverlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// BarContent is the foreground style of the status bar
type BarContent int

const (
	BarDarkContent BarContent = iota
	BarLightContent
)

// StatusBarStyle describes the status bar for one orientation
type StatusBarStyle struct {
	Content    BarContent
	Background color.RGBA
}

// LayoutConfig contains the sizing ratios and colours of the screen
type LayoutConfig struct {
	// Cover image side as a fraction of the viewport width
	PortraitImageRatio  float64
	LandscapeImageRatio float64

	// Decorative disc
	DiscRatio       float64 // side = width * DiscRatio
	DiscRadiusRatio float64 // corner radius = width * DiscRadiusRatio
	DiscSpinSeconds float32 // one full turn while a sound is playing

	// Buttons
	ButtonInset   float64 // buttonWidth = width/2 - ButtonInset
	ButtonMargin  int
	ButtonHeight  int

	// Text input
	InputWidthRatio float64
	InputHeight     int
	InputMargin     int

	ContentPadding  int
	StatusBarHeight int
	KeyboardOffset  int // content lift while the text input has focus

	PortraitStatusBar  StatusBarStyle
	LandscapeStatusBar StatusBarStyle

	Background       color.RGBA
	ButtonColor      color.RGBA
	ButtonHover      color.RGBA
	ButtonPressed    color.RGBA
	InputBorder      color.RGBA
	InputBackground  color.RGBA
	TextColor        color.RGBA
	PlaceholderColor color.RGBA
	Placeholder      string
}

// NoteConfig contains floating note configuration
type NoteConfig struct {
	Duration       float32 // seconds from top to bottom
	EdgeMargin     float64 // notes spawn in [0, width-EdgeMargin)
	FontSize       float64
	ButtonFontSize float64
	Color          color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool   // Draw note count, input text and last audio error
	LogLevel string // zerolog level name
	AssetDir string // Directory overlaid on top of the embedded assets
}

// Global configuration instances
var C *Config
var Layout LayoutConfig
var Note NoteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SteelBlue  = color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 255}
	Emerald    = color.RGBA{R: 0x50, G: 0xC8, B: 0x78, A: 255}
	DeepTeal   = color.RGBA{R: 0x27, G: 0x40, B: 0x3e, A: 255}
	Jade       = color.RGBA{R: 0x21, G: 0xA6, B: 0x91, A: 255}
	LightGray  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	MidGray    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
	LightRed   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	DimOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  420,
		Height: 760,
		Title:  "notedrop",
	}

	Layout = LayoutConfig{
		PortraitImageRatio:  0.75,
		LandscapeImageRatio: 0.4,

		DiscRatio:       0.5,
		DiscRadiusRatio: 0.25,
		DiscSpinSeconds: 4,

		ButtonInset:   20,
		ButtonMargin:  5,
		ButtonHeight:  48,

		InputWidthRatio: 0.92,
		InputHeight:     50,
		InputMargin:     20,

		ContentPadding:  10,
		StatusBarHeight: 24,
		KeyboardOffset:  100,

		PortraitStatusBar:  StatusBarStyle{Content: BarDarkContent, Background: SteelBlue},
		LandscapeStatusBar: StatusBarStyle{Content: BarLightContent, Background: Emerald},

		Background:       DeepTeal,
		ButtonColor:      Jade,
		ButtonHover:      color.RGBA{R: 0x2c, G: 0xbc, B: 0xa5, A: 255},
		ButtonPressed:    color.RGBA{R: 0x18, G: 0x7a, B: 0x6b, A: 255},
		InputBorder:      LightGray,
		InputBackground:  color.RGBA{R: 0x1f, G: 0x33, B: 0x31, A: 255},
		TextColor:        White,
		PlaceholderColor: MidGray,
		Placeholder:      "Nhập văn bản",
	}

	Note = NoteConfig{
		Duration:       3.0,
		EdgeMargin:     50,
		FontSize:       70,
		ButtonFontSize: 33,
		Color:          White,
	}

	Debug = DebugConfig{
		LogLevel: "info",
	}
}
