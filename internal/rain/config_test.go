package rain

import (
	"strings"
	"testing"
)

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "dimensions"},
		{"negative height", func(c *Config) { c.Height = -1 }, "dimensions"},
		{"zero cell", func(c *Config) { c.CellPx = 0 }, "cell size"},
		{"zero speed", func(c *Config) { c.RowsPerSec = 0 }, "rows per second"},
		{"negative gap", func(c *Config) { c.DigitGapRows = -1 }, "digit gap"},
		{"fixed start letters", func(c *Config) { c.FixedStart = "12ab34" }, "not a decimal"},
		{"fixed start short", func(c *Config) { c.FixedStart = "1234" }, "at least"},
		{"fixed start zero", func(c *Config) { c.FixedStart = "0000000000" }, "positive"},
		{"digit bounds inverted", func(c *Config) { c.MinDigits = 20; c.MaxDigits = 10 }, "below min"},
		{"zero density", func(c *Config) { c.Density = 0 }, "density"},
		{"idle range inverted", func(c *Config) { c.IdleMinMS = 500; c.IdleMaxMS = 100 }, "idle wait"},
		{"position threshold high", func(c *Config) { c.SpawnThreshold = 1.5 }, "position trigger"},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: Validate accepted a bad config", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestTargetResolution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 100
	cfg.CellPx = 10 // 10 columns
	cfg.Density = 1.6
	if got := cfg.Target(); got != 16 {
		t.Fatalf("density target %d, want 16", got)
	}
	cfg.Density = 0.2
	if got := cfg.Target(); got != 10 {
		t.Fatalf("low-density target %d, want the column count 10", got)
	}
	cfg.TargetStreams = 6
	if got := cfg.Target(); got != 6 {
		t.Fatalf("explicit target %d, want 6", got)
	}
}

func TestPresetsConfigureTriggerAndCull(t *testing.T) {
	cases := []struct {
		mode    string
		trigger TriggerKind
		cull    CullKind
	}{
		{"branching", TriggerPosition, CullBottom},
		{"cascade", TriggerCount, CullTop},
		{"columns", TriggerIdle, CullWhole},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		if err := ApplyPreset(&cfg, tc.mode); err != nil {
			t.Fatalf("%s: %v", tc.mode, err)
		}
		if cfg.Trigger != tc.trigger || cfg.Cull != tc.cull {
			t.Fatalf("%s: trigger %v cull %v, want %v/%v",
				tc.mode, cfg.Trigger, cfg.Cull, tc.trigger, tc.cull)
		}
		if cfg.Mode != tc.mode {
			t.Fatalf("%s: mode recorded as %q", tc.mode, cfg.Mode)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: preset produced invalid config: %v", tc.mode, err)
		}
	}
	if err := ApplyPreset(&Config{}, "glitter"); err == nil {
		t.Fatal("unknown preset accepted")
	}
}

func TestParseKinds(t *testing.T) {
	for _, s := range []string{"count", "position", "idle"} {
		k, err := ParseTrigger(s)
		if err != nil || k.String() != s {
			t.Fatalf("trigger %q round-trip failed: %v %v", s, k, err)
		}
	}
	for _, s := range []string{"top", "bottom", "whole"} {
		k, err := ParseCull(s)
		if err != nil || k.String() != s {
			t.Fatalf("cull %q round-trip failed: %v %v", s, k, err)
		}
	}
	if _, err := ParseTrigger("sometimes"); err == nil {
		t.Fatal("bad trigger accepted")
	}
	if _, err := ParseCull("sideways"); err == nil {
		t.Fatal("bad cull accepted")
	}
}
