package app

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"testing"

	"collatz-rain/internal/rain"
)

func TestEngineMapsModeAndOverrides(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = "cascade"
	cfg.Cull = "bottom" // explicit override on top of the preset

	ec, err := cfg.Engine(nil)
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	if ec.Trigger != rain.TriggerCount {
		t.Fatalf("trigger %v, want the cascade preset's count trigger", ec.Trigger)
	}
	if ec.Cull != rain.CullBottom {
		t.Fatalf("cull %v, want the explicit bottom override", ec.Cull)
	}
	if ec.Mode != "cascade" {
		t.Fatalf("mode %q, want cascade", ec.Mode)
	}
}

func TestEngineRejectsBadInput(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = "nosuchmode"
	if _, err := cfg.Engine(nil); err == nil {
		t.Fatal("unknown mode accepted")
	}

	cfg = NewConfig()
	cfg.Start = "123" // shorter than min-digits
	if _, err := cfg.Engine(nil); err == nil {
		t.Fatal("short fixed start accepted")
	}

	cfg = NewConfig()
	cfg.Width = 0
	if _, err := cfg.Engine(nil); err == nil {
		t.Fatal("zero width accepted")
	}

	cfg = NewConfig()
	cfg.Trigger = "never"
	if _, err := cfg.Engine(nil); err == nil {
		t.Fatal("bad trigger accepted")
	}
}

func TestEngineWiresStartLogger(t *testing.T) {
	cfg := NewConfig()
	cfg.LogStarts = true
	logger := log.New(os.Stderr, "", 0)
	ec, err := cfg.Engine(logger)
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	if ec.Starts != logger {
		t.Fatal("start logger not wired through")
	}

	cfg.LogStarts = false
	ec, err = cfg.Engine(logger)
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	if ec.Starts != nil {
		t.Fatal("start logger wired although -log-starts is off")
	}
}

func TestValidatePresentationOptions(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	cfg.TrailAlpha = 300
	if err := cfg.Validate(); err == nil {
		t.Fatal("trail alpha 300 accepted")
	}
	cfg = NewConfig()
	cfg.TPS = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero tps accepted")
	}
}

func TestLoadFileFlagsKeepPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.yaml")
	data := []byte("width: 640\nheight: 480\nspeed: 12\nmode: columns\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("rain", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-speed", "20", "-config", path}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(cfg.File, fs); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Width != 640 || cfg.Height != 480 {
		t.Fatalf("file dimensions not applied: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mode != "columns" {
		t.Fatalf("file mode not applied: %q", cfg.Mode)
	}
	// -speed was given explicitly and must survive the file merge.
	if cfg.Speed != 20 {
		t.Fatalf("explicit -speed lost: %g", cfg.Speed)
	}
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("width: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	if err := cfg.LoadFile(path, nil); err == nil {
		t.Fatal("malformed YAML accepted")
	}
}
