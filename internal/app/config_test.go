package app

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDefaultConfigMatchesEmbeddedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg != fallbackConfig() {
		t.Fatalf("embedded defaults drifted from fallback:\n got %+v\nwant %+v", cfg, fallbackConfig())
	}
	size := cfg.GridSize()
	if size.W != 76 || size.H != 43 {
		t.Fatalf("expected a 76x43 grid, got %dx%d", size.W, size.H)
	}
	if cfg.TickInterval != 350*time.Millisecond {
		t.Fatalf("expected 350ms tick, got %v", cfg.TickInterval)
	}
	if cfg.Level() != log.InfoLevel {
		t.Fatalf("expected info level, got %v", cfg.Level())
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("cell_size: 10\ntick_interval: 1s\nlog_level: debug\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CellSize != 10 || cfg.TickInterval != time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.WindowWidth != 1920 {
		t.Fatalf("unset keys must keep defaults, got width %d", cfg.WindowWidth)
	}
	if cfg.Level() != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
}

func TestParseConfigRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"zero cell", "cell_size: 0", "cell_size"},
		{"cell wider than window", "window_width: 20\ncell_size: 25", "does not fit"},
		{"negative window", "window_height: -1", "window size"},
		{"zero tps", "tps: 0", "tps"},
		{"zero tick", "tick_interval: 0s", "tick_interval"},
		{"bad level", "log_level: loud", "log_level"},
		{"bad tui width", "tui_cell_width: 0", "tui_cell_width"},
		{"malformed yaml", "cell_size: [", "parse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
