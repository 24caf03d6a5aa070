package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.BoardsDir != "boards" {
		t.Errorf("expected boards dir 'boards', got %s", cfg.Editor.BoardsDir)
	}
	if cfg.Editor.Autosave {
		t.Error("expected autosave off by default")
	}
	if cfg.Editor.AutosaveSeconds != 30 {
		t.Errorf("expected autosave interval 30, got %d", cfg.Editor.AutosaveSeconds)
	}

	if cfg.Light.Color != "#ffaa55" {
		t.Errorf("expected light color #ffaa55, got %s", cfg.Light.Color)
	}
	if cfg.Light.Intensity != 1.2 {
		t.Errorf("expected intensity 1.2, got %f", cfg.Light.Intensity)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
editor:
  boards_dir: /srv/boards
  autosave: true
  autosave_seconds: 5
  default_board: crypt

light:
  color: "#00ff00"
  intensity: 0.5

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Editor.BoardsDir != "/srv/boards" {
		t.Errorf("expected boards dir /srv/boards, got %s", cfg.Editor.BoardsDir)
	}
	if !cfg.Editor.Autosave || cfg.Editor.AutosaveSeconds != 5 {
		t.Errorf("autosave settings not applied: %+v", cfg.Editor)
	}
	if cfg.Editor.DefaultBoard != "crypt" {
		t.Errorf("expected default board crypt, got %s", cfg.Editor.DefaultBoard)
	}
	if cfg.Light.Color != "#00ff00" {
		t.Errorf("expected light color #00ff00, got %s", cfg.Light.Color)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Light.Distance != 4 {
		t.Errorf("expected default distance 4, got %f", cfg.Light.Distance)
	}
	if cfg.Camera.OrbitDistance != 8 {
		t.Errorf("expected default orbit distance 8, got %f", cfg.Camera.OrbitDistance)
	}
}

func TestLightProperties(t *testing.T) {
	lc := LightConfig{Color: "#102030", Intensity: 2, Distance: 6, Decay: 1}
	p := lc.LightProperties()
	if p.Color != 0x102030 {
		t.Errorf("expected color 0x102030, got %#x", p.Color)
	}
	if p.Intensity != 2 || p.Distance != 6 || p.Decay != 1 {
		t.Errorf("unexpected properties %+v", p)
	}

	// Bad color falls back; negative falloff clamps.
	lc = LightConfig{Color: "red", Intensity: -1}
	p = lc.LightProperties()
	if p.Color != 0xffaa55 {
		t.Errorf("expected fallback color, got %#x", p.Color)
	}
	if p.Intensity != 0 {
		t.Errorf("expected clamped intensity 0, got %f", p.Intensity)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"#ffffff", 0xffffff, true},
		{"#000000", 0, true},
		{"#AbCdEf", 0xabcdef, true},
		{"ffffff", 0, false},
		{"#fff", 0, false},
		{"#gggggg", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseHexColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseHexColor(%q) = (%#x,%v), want (%#x,%v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
