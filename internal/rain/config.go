package rain

import (
	"fmt"
	"log"
)

// TriggerKind selects the condition under which a stream requests a child.
type TriggerKind uint8

const (
	// TriggerCount fires once a stream has emitted a fixed number of digits.
	TriggerCount TriggerKind = iota
	// TriggerPosition fires once the head crosses a fraction of the height.
	TriggerPosition
	// TriggerIdle disables branching; finished columns reseed after a
	// randomized wait instead.
	TriggerIdle
)

// String returns the flag spelling of the trigger kind.
func (k TriggerKind) String() string {
	switch k {
	case TriggerCount:
		return "count"
	case TriggerPosition:
		return "position"
	case TriggerIdle:
		return "idle"
	}
	return "unknown"
}

// ParseTrigger maps a flag spelling onto a TriggerKind.
func ParseTrigger(s string) (TriggerKind, error) {
	switch s {
	case "count":
		return TriggerCount, nil
	case "position":
		return TriggerPosition, nil
	case "idle":
		return TriggerIdle, nil
	}
	return 0, fmt.Errorf("unknown spawn trigger %q", s)
}

// CullKind selects how trailing digits leave a draining stream.
type CullKind uint8

const (
	// CullTop drops the tail digit once it sits more than one row above the
	// top edge.
	CullTop CullKind = iota
	// CullBottom drops the tail digit once it reaches the bottom edge.
	CullBottom
	// CullWhole keeps the buffer intact until its entire extent has passed
	// the bottom edge, then clears it in one step.
	CullWhole
)

// String returns the flag spelling of the cull kind.
func (k CullKind) String() string {
	switch k {
	case CullTop:
		return "top"
	case CullBottom:
		return "bottom"
	case CullWhole:
		return "whole"
	}
	return "unknown"
}

// ParseCull maps a flag spelling onto a CullKind.
func ParseCull(s string) (CullKind, error) {
	switch s {
	case "top":
		return CullTop, nil
	case "bottom":
		return CullBottom, nil
	case "whole":
		return CullWhole, nil
	}
	return 0, fmt.Errorf("unknown cull policy %q", s)
}

// Config holds every tunable of the rain engine. Validate must pass before
// a Field is constructed; the engine itself never fails after that.
type Config struct {
	Width  int // visible area width in pixels
	Height int // visible area height in pixels
	CellPx int // pixel size of one row/cell; columns fit = Width / CellPx

	RowsPerSec   float64 // head scroll and emission speed
	DigitGapRows int     // blank rows between successive emitted digits
	SpeedJitter  float64 // per-stream speed variance fraction, 0 disables
	HeadStartRow float64 // fractional row a new head starts at, usually negative

	Trigger        TriggerKind
	SpawnThreshold float64 // digits for count, height fraction for position
	Cull           CullKind

	CooldownMS int64 // minimum ms before a column may be reused

	MinDigits  int    // random seed magnitude lower bound, in decimal digits
	MaxDigits  int    // random seed magnitude upper bound
	FixedStart string // optional decimal seed overriding random magnitudes

	Density       float64 // target streams = Density x columns fit
	TargetStreams int     // explicit override for the concurrency target

	TailSlackRows int // extra buffer rows kept beyond the visible height

	IdleMinMS int64 // idle-trigger reseed wait lower bound
	IdleMaxMS int64 // idle-trigger reseed wait upper bound

	Mode string // informational preset name, shown on the HUD

	Starts *log.Logger // optional sink for "start: <value>" lines
}

// DefaultConfig returns the standard configuration, matching the branching
// preset.
func DefaultConfig() Config {
	return Config{
		Width:          1280,
		Height:         720,
		CellPx:         18,
		RowsPerSec:     8,
		DigitGapRows:   0,
		SpeedJitter:    0.15,
		HeadStartRow:   -2,
		Trigger:        TriggerPosition,
		SpawnThreshold: 0.5,
		Cull:           CullBottom,
		CooldownMS:     800,
		MinDigits:      10,
		MaxDigits:      26,
		Density:        1.6,
		TailSlackRows:  8,
		IdleMinMS:      900,
		IdleMaxMS:      5000,
		Mode:           "branching",
	}
}

// ColsFit returns how many columns the visible area holds.
func (c Config) ColsFit() int {
	if c.CellPx <= 0 {
		return 1
	}
	n := c.Width / c.CellPx
	if n < 1 {
		n = 1
	}
	return n
}

// RowsFit returns how many rows the visible area holds.
func (c Config) RowsFit() int {
	if c.CellPx <= 0 {
		return 1
	}
	n := c.Height / c.CellPx
	if n < 1 {
		n = 1
	}
	return n
}

// Target resolves the desired active stream count.
func (c Config) Target() int {
	if c.TargetStreams > 0 {
		return c.TargetStreams
	}
	cols := c.ColsFit()
	t := int(c.Density * float64(cols))
	if t < cols {
		t = cols
	}
	if t < 1 {
		t = 1
	}
	return t
}

// Validate rejects configurations the engine cannot run with. It is the
// only place the engine reports errors; everything past it is infallible.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", c.Width, c.Height)
	}
	if c.CellPx <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellPx)
	}
	if c.RowsPerSec <= 0 {
		return fmt.Errorf("rows per second must be positive, got %g", c.RowsPerSec)
	}
	if c.DigitGapRows < 0 {
		return fmt.Errorf("digit gap must not be negative, got %d", c.DigitGapRows)
	}
	if c.SpeedJitter < 0 || c.SpeedJitter >= 1 {
		return fmt.Errorf("speed jitter must be in [0,1), got %g", c.SpeedJitter)
	}
	if c.MinDigits < 1 {
		return fmt.Errorf("min digits must be at least 1, got %d", c.MinDigits)
	}
	if c.MaxDigits < c.MinDigits {
		return fmt.Errorf("max digits %d below min digits %d", c.MaxDigits, c.MinDigits)
	}
	if c.FixedStart != "" {
		if err := checkFixedStart(c.FixedStart, c.MinDigits); err != nil {
			return err
		}
	}
	if c.TargetStreams < 0 {
		return fmt.Errorf("target streams must not be negative, got %d", c.TargetStreams)
	}
	if c.TargetStreams == 0 && c.Density <= 0 {
		return fmt.Errorf("density must be positive, got %g", c.Density)
	}
	if c.Trigger == TriggerCount && c.SpawnThreshold < 1 {
		return fmt.Errorf("count trigger threshold must be at least 1, got %g", c.SpawnThreshold)
	}
	if c.Trigger == TriggerPosition && (c.SpawnThreshold <= 0 || c.SpawnThreshold > 1) {
		return fmt.Errorf("position trigger threshold must be in (0,1], got %g", c.SpawnThreshold)
	}
	if c.CooldownMS < 0 {
		return fmt.Errorf("column cooldown must not be negative, got %d", c.CooldownMS)
	}
	if c.IdleMinMS < 0 || c.IdleMaxMS < c.IdleMinMS {
		return fmt.Errorf("idle wait range [%d,%d] is invalid", c.IdleMinMS, c.IdleMaxMS)
	}
	return nil
}

func checkFixedStart(s string, minDigits int) error {
	nonzero := false
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("fixed start %q is not a decimal integer", s)
		}
		if ch != '0' {
			nonzero = true
		}
	}
	if !nonzero {
		return fmt.Errorf("fixed start %q must be positive", s)
	}
	if len(s) < minDigits {
		return fmt.Errorf("fixed start has %d digits, need at least %d", len(s), minDigits)
	}
	return nil
}

// Preset adjusts a Config toward one of the classic rain behaviors.
type Preset func(*Config)

var presets = map[string]Preset{}

// RegisterPreset adds a preset under the provided name.
func RegisterPreset(name string, p Preset) {
	if name == "" || p == nil {
		return
	}
	presets[name] = p
}

// PresetNames returns the registered preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// ApplyPreset mutates cfg according to the named preset. Unknown names are
// an error so misspelled modes fail at startup.
func ApplyPreset(cfg *Config, name string) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown mode %q", name)
	}
	p(cfg)
	cfg.Mode = name
	return nil
}

func init() {
	// Branch at mid-screen, digits drop off the bottom one by one.
	RegisterPreset("branching", func(c *Config) {
		c.Trigger = TriggerPosition
		c.SpawnThreshold = 0.5
		c.Cull = CullBottom
	})
	// Branch after a fixed digit count, trail trimmed above the top edge.
	RegisterPreset("cascade", func(c *Config) {
		c.Trigger = TriggerCount
		c.SpawnThreshold = 12
		c.Cull = CullTop
		c.HeadStartRow = -16
	})
	// No branching: each column runs sequential, unrelated seeds with a
	// randomized pause in between.
	RegisterPreset("columns", func(c *Config) {
		c.Trigger = TriggerIdle
		c.Cull = CullWhole
		c.Density = 1
	})
}
