package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.log")

	log := NewWithFileConfig("debug", DefaultFileConfig(path), false)
	log.Info("board saved")
	if err := log.Sync(); err != nil {
		t.Logf("sync: %v", err) // some platforms reject sync on regular files
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output in file")
	}
}

func TestConsoleOnlyDoesNotPanic(t *testing.T) {
	log := New("info", "")
	log.Debug("suppressed")
	log.Info("visible")
}
