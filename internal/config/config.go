// Package config handles editor configuration loading and management.
package config

import "github.com/zuzzo/Dungeon/internal/board"

// Config holds all editor settings.
type Config struct {
	Editor  EditorConfig  `yaml:"editor"`
	Light   LightConfig   `yaml:"light"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// EditorConfig holds board storage and autosave settings.
type EditorConfig struct {
	BoardsDir       string `yaml:"boards_dir"`
	Autosave        bool   `yaml:"autosave"`
	AutosaveSeconds int    `yaml:"autosave_seconds"`
	DefaultBoard    string `yaml:"default_board"`
}

// LightConfig is the starting light-brush properties.
type LightConfig struct {
	Color     string  `yaml:"color"` // "#rrggbb"
	Intensity float64 `yaml:"intensity"`
	Distance  float64 `yaml:"distance"`
	Decay     float64 `yaml:"decay"`
}

// CameraConfig holds the orbit preferences the frontend reads. The core
// never consumes these; they ride along in the same file.
type CameraConfig struct {
	OrbitDistance float64 `yaml:"orbit_distance"`
	OrbitPitch    float64 `yaml:"orbit_pitch"`
	TopDown       bool    `yaml:"top_down"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			BoardsDir:       "boards",
			Autosave:        false,
			AutosaveSeconds: 30,
			DefaultBoard:    "dungeon",
		},
		Light: LightConfig{
			Color:     "#ffaa55",
			Intensity: 1.2,
			Distance:  4,
			Decay:     2,
		},
		Camera: CameraConfig{
			OrbitDistance: 8,
			OrbitPitch:    0.9,
			TopDown:       false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// LightProperties converts the configured light defaults to the board
// representation. A malformed color string falls back to the built-in
// default.
func (c LightConfig) LightProperties() board.LightProperties {
	p := board.LightProperties{
		Color:     board.DefaultLight().Color,
		Intensity: c.Intensity,
		Distance:  c.Distance,
		Decay:     c.Decay,
	}
	if rgb, ok := parseHexColor(c.Color); ok {
		p.Color = rgb
	}
	return p.Clamped()
}

// parseHexColor parses "#rrggbb" into a packed RGB value.
func parseHexColor(s string) (uint32, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, false
	}
	var rgb uint32
	for _, c := range s[1:] {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		rgb = rgb<<4 | d
	}
	return rgb, true
}
