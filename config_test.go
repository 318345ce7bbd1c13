package touchinput

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TouchLayerMask != AllLayers {
		t.Errorf("TouchLayerMask = %#x, want all", cfg.TouchLayerMask)
	}
	if !cfg.StationaryTouchEnable {
		t.Error("StationaryTouchEnable = false, want true")
	}
	if cfg.TouchEnterExitEnable {
		t.Error("TouchEnterExitEnable = true, want false")
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(`
touch_layer_mask = "0,3"
stationary_touch = false
touch_enter_exit = true
cameras = ["hud", "main"]
log_level = "debug"
debug = true
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TouchLayerMask != LayerMaskOf(0, 3) {
		t.Errorf("TouchLayerMask = %#x", cfg.TouchLayerMask)
	}
	if cfg.StationaryTouchEnable || !cfg.TouchEnterExitEnable || !cfg.Debug {
		t.Errorf("flags = %+v", cfg)
	}
	if strings.Join(cfg.CameraNames, ",") != "hud,main" {
		t.Errorf("CameraNames = %v", cfg.CameraNames)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	cfg, err := DecodeConfig(`touch_enter_exit = true`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TouchLayerMask != AllLayers || !cfg.StationaryTouchEnable {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"unknown key", "stationary = true", "unknown keys: stationary"},
		{"bad log level", `log_level = "loud"`, "unknown level"},
		{"bad mask", `touch_layer_mask = "40"`, "decode config"},
		{"bad toml", "touch_enter_exit = ", "decode config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestWriteLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.toml")
	cfg := DefaultConfig()
	cfg.TouchLayerMask = LayerMaskOf(1, 2)
	cfg.TouchEnterExitEnable = true
	cfg.CameraNames = []string{"main"}
	cfg.LogLevel = "warn"

	if err := WriteConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.TouchLayerMask != cfg.TouchLayerMask || got.TouchEnterExitEnable != cfg.TouchEnterExitEnable ||
		got.StationaryTouchEnable != cfg.StationaryTouchEnable || got.LogLevel != cfg.LogLevel ||
		len(got.CameraNames) != 1 || got.CameraNames[0] != "main" {
		t.Errorf("LoadConfig = %+v, want %+v", got, cfg)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewTouchInputBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "chatty"
	if _, err := NewTouchInput(&fakeScene{}, cfg); err == nil {
		t.Error("expected error for unknown log level")
	}
}
