package touchinput

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pion/logging"
)

// Config controls a TouchInput. It is read once by NewTouchInput. Start from
// DefaultConfig: the zero Config selects no layers and never hits anything.
type Config struct {
	// TouchLayerMask filters every hit test. DefaultConfig selects all
	// layers; NoLayers disables hits entirely.
	TouchLayerMask LayerMask `toml:"touch_layer_mask"`
	// StationaryTouchEnable makes a Stationary sample send onTouchMove exactly
	// like a Moved sample. When false, Stationary samples are ignored.
	StationaryTouchEnable bool `toml:"stationary_touch"`
	// TouchEnterExitEnable turns on hover tracking and the onTouchEnter and
	// onTouchExit events.
	TouchEnterExitEnable bool `toml:"touch_enter_exit"`
	// CameraNames orders the scene's cameras by name. Ignored when Cameras
	// is set.
	CameraNames []string `toml:"cameras"`
	Debug       bool     `toml:"debug"`
	LogLevel    string   `toml:"log_level"`

	// Cameras is an explicit ordered camera list.
	Cameras []Viewpoint `toml:"-"`
	// Logger replaces the default stderr logger.
	Logger logging.LeveledLogger `toml:"-"`
}

// DefaultConfig returns the default settings: all layers, stationary touches
// enabled, enter/exit disabled, errors-only logging.
func DefaultConfig() Config {
	return Config{
		TouchLayerMask:        AllLayers,
		StationaryTouchEnable: true,
		LogLevel:              "error",
	}
}

// DecodeConfig parses TOML text on top of DefaultConfig. Unknown keys are an
// error.
func DecodeConfig(text string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := DecodeConfig(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML to path.
func WriteConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}
