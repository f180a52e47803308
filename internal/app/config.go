package app

import (
	"flag"
	"fmt"
	"log"
	"os"

	"collatz-rain/internal/rain"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application.
// Every field can also come from a YAML config file; explicit flags keep
// priority over file values.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Cell   int `yaml:"cell"`

	Speed  float64 `yaml:"speed"`
	Gap    int     `yaml:"gap"`
	Jitter float64 `yaml:"jitter"`

	Mode           string  `yaml:"mode"`
	Trigger        string  `yaml:"trigger"`
	SpawnThreshold float64 `yaml:"spawnThreshold"`
	Cull           string  `yaml:"cull"`

	CooldownMS int64 `yaml:"cooldownMs"`

	MinDigits int    `yaml:"minDigits"`
	MaxDigits int    `yaml:"maxDigits"`
	Start     string `yaml:"start"`

	Density float64 `yaml:"density"`
	Streams int     `yaml:"streams"`

	Tail       int     `yaml:"tail"`
	Decay      float64 `yaml:"decay"`
	TrailAlpha int     `yaml:"trailAlpha"`

	IdleMinMS int64 `yaml:"idleMinMs"`
	IdleMaxMS int64 `yaml:"idleMaxMs"`

	LogStarts bool  `yaml:"logStarts"`
	Seed      int64 `yaml:"seed"`
	TPS       int   `yaml:"tps"`

	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      1280,
		Height:     720,
		Cell:       18,
		Speed:      8,
		Jitter:     0.15,
		Mode:       "branching",
		CooldownMS: 800,
		MinDigits:  10,
		MaxDigits:  26,
		Density:    1.6,
		Tail:       24,
		Decay:      1.5,
		TrailAlpha: 50,
		IdleMinMS:  900,
		IdleMaxMS:  5000,
		TPS:        60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Cell, "cell", c.Cell, "digit cell size in pixels")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "rows per second")
	fs.IntVar(&c.Gap, "gap", c.Gap, "blank rows between emitted digits")
	fs.Float64Var(&c.Jitter, "jitter", c.Jitter, "per-stream speed variance fraction")
	fs.StringVar(&c.Mode, "mode", c.Mode, "rain mode: branching, cascade or columns")
	fs.StringVar(&c.Trigger, "trigger", c.Trigger, "spawn trigger override: count, position or idle")
	fs.Float64Var(&c.SpawnThreshold, "spawn-threshold", c.SpawnThreshold, "spawn trigger threshold; 0 keeps the mode default")
	fs.StringVar(&c.Cull, "cull", c.Cull, "cull policy override: top, bottom or whole")
	fs.Int64Var(&c.CooldownMS, "cooldown-ms", c.CooldownMS, "minimum ms before a column is reused")
	fs.IntVar(&c.MinDigits, "min-digits", c.MinDigits, "minimum random seed digits")
	fs.IntVar(&c.MaxDigits, "max-digits", c.MaxDigits, "maximum random seed digits")
	fs.StringVar(&c.Start, "start", c.Start, "fixed decimal start value for every stream")
	fs.Float64Var(&c.Density, "density", c.Density, "target streams as a multiple of columns")
	fs.IntVar(&c.Streams, "streams", c.Streams, "explicit stream target; 0 derives it from density")
	fs.IntVar(&c.Tail, "tail", c.Tail, "trail length in rows")
	fs.Float64Var(&c.Decay, "decay", c.Decay, "trail decay exponent")
	fs.IntVar(&c.TrailAlpha, "trail-alpha", c.TrailAlpha, "per-frame fade alpha (0-255)")
	fs.Int64Var(&c.IdleMinMS, "idle-min-ms", c.IdleMinMS, "minimum idle wait before a column reseeds")
	fs.Int64Var(&c.IdleMaxMS, "idle-max-ms", c.IdleMaxMS, "maximum idle wait before a column reseeds")
	fs.BoolVar(&c.LogStarts, "log-starts", c.LogStarts, "log each stream's start value")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 uses the wall clock")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.StringVar(&c.File, "config", c.File, "YAML config file; flags override its values")
}

// LoadFile merges a YAML file into the config. Flags set explicitly on fs
// are re-applied afterwards so the command line keeps priority.
func (c *Config) LoadFile(path string, fs *flag.FlagSet) error {
	explicit := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for name, val := range explicit {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the presentation-side options the engine does not see.
func (c *Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Tail <= 0 {
		return fmt.Errorf("tail must be positive, got %d", c.Tail)
	}
	if c.Decay <= 0 {
		return fmt.Errorf("decay must be positive, got %g", c.Decay)
	}
	if c.TrailAlpha < 0 || c.TrailAlpha > 255 {
		return fmt.Errorf("trail alpha must be in 0-255, got %d", c.TrailAlpha)
	}
	return nil
}

// Engine resolves the flag-level config into a validated engine config.
// starts receives the "start: <value>" lines when -log-starts is set.
func (c *Config) Engine(starts *log.Logger) (rain.Config, error) {
	ec := rain.DefaultConfig()
	if err := rain.ApplyPreset(&ec, c.Mode); err != nil {
		return ec, err
	}

	ec.Width = c.Width
	ec.Height = c.Height
	ec.CellPx = c.Cell
	ec.RowsPerSec = c.Speed
	ec.DigitGapRows = c.Gap
	ec.SpeedJitter = c.Jitter
	ec.CooldownMS = c.CooldownMS
	ec.MinDigits = c.MinDigits
	ec.MaxDigits = c.MaxDigits
	ec.FixedStart = c.Start
	ec.Density = c.Density
	ec.TargetStreams = c.Streams
	ec.IdleMinMS = c.IdleMinMS
	ec.IdleMaxMS = c.IdleMaxMS

	if c.Trigger != "" {
		k, err := rain.ParseTrigger(c.Trigger)
		if err != nil {
			return ec, err
		}
		ec.Trigger = k
	}
	if c.SpawnThreshold != 0 {
		ec.SpawnThreshold = c.SpawnThreshold
	}
	if c.Cull != "" {
		k, err := rain.ParseCull(c.Cull)
		if err != nil {
			return ec, err
		}
		ec.Cull = k
	}
	if c.LogStarts {
		ec.Starts = starts
	}

	if err := ec.Validate(); err != nil {
		return ec, err
	}
	return ec, nil
}
