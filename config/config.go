package config

import "image/color"

// ControlsConfig contains look and movement tuning
type ControlsConfig struct {
	Sensitivity float64 `yaml:"sensitivity"` // radians per pixel of pointer movement
	MoveSpeed   float64 `yaml:"moveSpeed"`   // world units per second
}

// BuildConfig contains placement targeting parameters
type BuildConfig struct {
	StepLength float64 `yaml:"stepLength"` // ray march step in world units
	MaxSteps   int     `yaml:"maxSteps"`   // step budget before falling back to the last point
}

// CameraConfig is the local camera state at session start
type CameraConfig struct {
	SpawnX     float64 `yaml:"spawnX"`
	SpawnY     float64 `yaml:"spawnY"`
	SpawnZ     float64 `yaml:"spawnZ"`
	SpawnYaw   float64 `yaml:"spawnYaw"`
	SpawnPitch float64 `yaml:"spawnPitch"`
}

// NetworkConfig contains transport settings
type NetworkConfig struct {
	DefaultAddress string `yaml:"defaultAddress"`
	Path           string `yaml:"path"`   // websocket endpoint path appended to bare host:port addresses
	Weapon         string `yaml:"weapon"` // weapon id sent with every shoot intent
	SendQueue      int    `yaml:"sendQueue"`
	ReadLimit      int64  `yaml:"readLimit"` // max inbound frame size in bytes
}

// RenderConfig contains top-down projection and colors
type RenderConfig struct {
	PixelsPerUnit  float64
	GroundMargin   float64 // distance of the horizon line from the bottom edge
	StructureSize  float32
	PlayerSize     float32
	ProjectileSize float32

	Background      color.RGBA
	GroundLine      color.RGBA
	LocalPlayer     color.RGBA
	RemotePlayer    color.RGBA
	DeadPlayer      color.RGBA
	Projectile      color.RGBA
	StructureColors map[string]color.RGBA
	UnknownMaterial color.RGBA
}

// HUDConfig contains overlay layout values
type HUDConfig struct {
	Margin          int
	LineHeight      int
	TextColor       color.RGBA
	DeadColor       color.RGBA
	KillFeedSeconds float32 // how long a kill notice takes to fade out
	KillFeedMax     int
	KillTarget      int // kills needed to win, shown next to the kill count
}

// ResultConfig contains the end-of-match screen values
type ResultConfig struct {
	BackgroundColor color.RGBA
	WinColor        color.RGBA
	LoseColor       color.RGBA
	HintColor       color.RGBA
	TitleY          int
	HintY           int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// BuildPieces is the ordered list of structure types selectable with the wheel.
var BuildPieces = []string{"wall", "floor", "stair", "cone"}

// Global configuration instances
var C *Config
var Controls ControlsConfig
var Build BuildConfig
var Camera CameraConfig
var Network NetworkConfig
var Render RenderConfig
var HUD HUDConfig
var Result ResultConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // draw tick and network counters
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Controls = ControlsConfig{
		Sensitivity: 0.003,
		MoveSpeed:   5.0,
	}

	Build = BuildConfig{
		StepLength: 0.5,
		MaxSteps:   50, // 25 units of reach
	}

	Camera = CameraConfig{
		SpawnX:     0,
		SpawnY:     2,
		SpawnZ:     5,
		SpawnYaw:   0,
		SpawnPitch: -0.2,
	}

	Network = NetworkConfig{
		DefaultAddress: "localhost:10000",
		Path:           "/ws",
		Weapon:         "ar",
		SendQueue:      64,
		ReadLimit:      1 << 20,
	}

	Render = RenderConfig{
		PixelsPerUnit:  50,
		GroundMargin:   50,
		StructureSize:  20,
		PlayerSize:     10,
		ProjectileSize: 4,

		Background:   color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 255},
		GroundLine:   color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 255},
		LocalPlayer:  Green,
		RemotePlayer: Red,
		DeadPlayer:   Gray,
		Projectile:   Yellow,
		StructureColors: map[string]color.RGBA{
			"wood":  {R: 0xbb, G: 0x88, B: 0x88, A: 255},
			"stone": {R: 0x99, G: 0x99, B: 0x99, A: 255},
			"metal": {R: 0xcc, G: 0xcc, B: 0xdd, A: 255},
		},
		UnknownMaterial: color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 255},
	}

	HUD = HUDConfig{
		Margin:          10,
		LineHeight:      16,
		TextColor:       White,
		DeadColor:       LightRed,
		KillFeedSeconds: 4,
		KillFeedMax:     5,
		KillTarget:      10,
	}

	Result = ResultConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 20, A: 255},
		WinColor:        LightGreen,
		LoseColor:       LightRed,
		HintColor:       Gray,
		TitleY:          220,
		HintY:           300,
	}
}
