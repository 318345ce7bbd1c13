package touchinput

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pion/logging"
)

// logScope is the pion logging scope used by the default logger.
const logScope = "touchinput"

// FrameStats holds per-frame counters. Duration is only measured in debug mode.
type FrameStats struct {
	Samples        int
	Dropped        int
	Dispatches     int
	ListenerPanics int
	Duration       time.Duration
}

// Stats returns the counters for the frame most recently started by
// ProcessFrame or Update.
func (ti *TouchInput) Stats() FrameStats {
	return ti.stats
}

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (ti *TouchInput) SetDebugMode(enabled bool) {
	ti.debug = enabled
}

// debugLog prints the frame stats when at least one sample was seen.
func (ti *TouchInput) debugLog(stats FrameStats) {
	if !ti.debug || stats.Samples == 0 {
		return
	}
	ti.log.Debugf("samples: %d | dropped: %d | dispatches: %d | panics: %d | time: %v",
		stats.Samples, stats.Dropped, stats.Dispatches, stats.ListenerPanics, stats.Duration)
}

// ParseLogLevel maps a level name to a pion log level. The empty string
// means "error".
func ParseLogLevel(name string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "error":
		return logging.LogLevelError, nil
	case "disabled", "off", "none":
		return logging.LogLevelDisabled, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	}
	return logging.LogLevelDisabled, fmt.Errorf("parse log level: unknown level %q", name)
}

// newLogger returns the default stderr logger for the given level name.
func newLogger(level string) (logging.LeveledLogger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewDefaultLeveledLoggerForScope(logScope, lvl, os.Stderr), nil
}
