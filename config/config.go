package config

import (
	"image/color"
	"time"
)

type Config struct {
	Width  int
	Height int
}

// WindowConfig contains desktop window settings
type WindowConfig struct {
	Title      string
	Resizable  bool
	Fullscreen bool
	TPS        int
}

// LayoutConfig contains resize handling and controller placement
type LayoutConfig struct {
	Debounce time.Duration

	// Background bands
	PortraitBand float64 // Share of the screen height covered in portrait

	// Controller UI placement, in unscaled pixels
	ShortcutSpacing float64
	ShortcutScale   [2]float64 // horizontal, vertical
	ShortcutOffsetX [2]float64
	ShortcutOffsetY [2]float64
	StoryScale      [2]float64
	TMOffset        float64
	TMAlpha         float64

	// Page glow, at layout scale 1
	GlowRadius   float64
	ShadowOffset float64
}

// MotionConfig contains the shared animation tuning
type MotionConfig struct {
	ColorRate      float64 // Color phase per unit of dt
	ColorWarmup    float64
	ColorPulse     float64 // Phase kick of a click on a colored element
	Urgency        float64 // Accel set by title and slogan clicks
	FractalLayers  int
	FractalStart   float64
	FractalRate    float64
	FractalStagger float64
	FractalBoost   float64 // Initial background speed-up
	EchoAlpha      float64 // Alpha of echo sprites
	SpinRate       float64 // Rotation per unit of dt of page spinners
	SpinnerRate    float64 // Rotation per unit of dt of the loading spinner

	DotScale float64 // Dot-screen scale at layout scale 1
}

// FadeConfig contains the page cross-fade settings
type FadeConfig struct {
	Rate         float64 // Overlay progress per unit of dt on each leg
	LoadingAlpha float64 // Overlay alpha while a page loads
	OverlayColor color.RGBA
}

// StoryConfig contains story caption timing
type StoryConfig struct {
	Rate      float64
	FrameTime float64
}

// LinksConfig contains the controller link bar targets
type LinksConfig struct {
	Facebook string
	YouTube  string
	LinkedIn string
}

// PagesConfig contains page routing settings
type PagesConfig struct {
	Default  string
	MediaDir string
}

// SessionConfig contains persistence settings
type SessionConfig struct {
	AppName string
	Item    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay      bool // Draw the debug overlay
	PauseEnabled bool // P pauses the animation clock
}

// Global configuration instances
var C *Config
var Window WindowConfig
var Layout LayoutConfig
var Motion MotionConfig
var Fade FadeConfig
var Story StoryConfig
var Links LinksConfig
var Pages PagesConfig
var Session SessionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Background   = color.RGBA{R: 6, G: 6, B: 6, A: 255}
	DebugText    = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	PauseOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	Facebook     = color.RGBA{R: 24, G: 119, B: 242, A: 255}
	YouTube      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LinkedIn     = color.RGBA{R: 10, G: 102, B: 194, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Window = WindowConfig{
		Title:      "Code on Bleu",
		Resizable:  true,
		Fullscreen: false,
		TPS:        60,
	}

	Layout = LayoutConfig{
		Debounce: 300 * time.Millisecond,

		PortraitBand: 0.718, // phi + 0.1

		ShortcutSpacing: 40,
		ShortcutScale:   [2]float64{0.2, 0.3},
		ShortcutOffsetX: [2]float64{50, 75},
		ShortcutOffsetY: [2]float64{150, 200},
		StoryScale:      [2]float64{1, 1.5},
		TMOffset:        80,
		TMAlpha:         0.125,

		GlowRadius:   10,
		ShadowOffset: 20,
	}

	Motion = MotionConfig{
		ColorRate:      0.01, // dt/100
		ColorWarmup:    8,
		ColorPulse:     1,
		Urgency:        8,
		FractalLayers:  3,
		FractalStart:   40,
		FractalRate:    0.04,
		FractalStagger: 1.3,
		FractalBoost:   1,
		EchoAlpha:      0.5,
		SpinRate:       0.02,
		SpinnerRate:    0.1,

		DotScale: 0.0707107,
	}

	Fade = FadeConfig{
		Rate:         0.025, // 40 ticks per leg at dt=1
		LoadingAlpha: 0.5,
		OverlayColor: Black,
	}

	Story = StoryConfig{
		Rate:      0.01,
		FrameTime: 3,
	}

	Links = LinksConfig{
		Facebook: "https://www.facebook.com/profile.php?id=61561860844447",
		YouTube:  "https://www.youtube.com/@CodeOnBleu",
		LinkedIn: "https://www.linkedin.com/company/code-on-bleu",
	}

	Pages = PagesConfig{
		Default:  "home",
		MediaDir: "media",
	}

	Session = SessionConfig{
		AppName: "codeonbleu-showcase",
		Item:    "session",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:      false,
		PauseEnabled: false,
	}
}

// Pick returns the horizontal or vertical entry of a pair.
func Pick(pair [2]float64, horizontal bool) float64 {
	if horizontal {
		return pair[0]
	}
	return pair[1]
}
