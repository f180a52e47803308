package rain

import (
	"math/big"

	"collatz-rain/internal/collatz"
	"collatz-rain/internal/core"
)

// Stats counts field activity since construction or the last Reset.
type Stats struct {
	Seeds    int // streams created by seeding / top-up
	Children int // streams created from a parent's spawn request
	Removed  int // streams removed after reaching Done
	Peak     int // highest concurrent stream count observed
}

// pendingSeed is a scheduled idle-mode reseed for one column slot.
type pendingSeed struct {
	dueMS  int64
	column int
}

// Field owns the active stream set and the column allocator, and drives one
// simulation step per Tick. All mutation happens inside Tick; the renderer
// never observes partial state.
type Field struct {
	cfg      Config
	rng      *core.RNG
	alloc    *Allocator
	renderer Renderer

	streams []*Stream
	pending []pendingSeed
	target  int

	speedScale float64
	stats      Stats
}

// New validates cfg and constructs an empty field. Call Reset to seed the
// initial population.
func New(cfg Config, rng *core.RNG, renderer Renderer) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	target := cfg.Target()
	if cfg.Trigger == TriggerIdle && target > cfg.ColsFit() {
		// Idle mode runs one sequential slot per column.
		target = cfg.ColsFit()
	}
	return &Field{
		cfg:        cfg,
		rng:        rng,
		alloc:      NewAllocator(cfg.ColsFit(), cfg.CooldownMS, rng),
		renderer:   renderer,
		target:     target,
		speedScale: 1,
	}, nil
}

// Config returns the configuration the field was built with.
func (f *Field) Config() Config { return f.cfg }

// Active returns the current stream count.
func (f *Field) Active() int { return len(f.streams) }

// Target returns the desired concurrent stream count.
func (f *Field) Target() int { return f.target }

// Cols returns the number of columns in the field.
func (f *Field) Cols() int { return f.alloc.Cols() }

// Mode returns the informational preset name.
func (f *Field) Mode() string { return f.cfg.Mode }

// Stats returns activity counters.
func (f *Field) Stats() Stats { return f.stats }

// SpeedScale returns the global time multiplier applied to stream motion.
func (f *Field) SpeedScale() float64 { return f.speedScale }

// SetSpeedScale adjusts the global time multiplier, clamped to [0.1, 5].
func (f *Field) SetSpeedScale(s float64) {
	if s < 0.1 {
		s = 0.1
	}
	if s > 5 {
		s = 5
	}
	f.speedScale = s
}

// Reset drops all streams and seeds the initial population at nowMS. Idle
// mode staggers the first wave over the idle wait range so columns do not
// start in sync; the other modes seed one stream per column immediately,
// with the first Tick topping up to the target.
func (f *Field) Reset(nowMS int64) {
	f.streams = f.streams[:0]
	f.pending = f.pending[:0]
	f.stats = Stats{}

	if f.cfg.Trigger == TriggerIdle {
		for i := 0; i < f.target; i++ {
			col := i % f.alloc.Cols()
			wait := f.rng.Int64N(f.cfg.IdleMaxMS + 1)
			f.pending = append(f.pending, pendingSeed{dueMS: nowMS + wait, column: col})
		}
		return
	}

	n := f.target
	if cols := f.alloc.Cols(); n > cols {
		n = cols
	}
	for i := 0; i < n; i++ {
		f.seed(nowMS)
	}
}

// Tick advances the field by dt seconds: update every pre-tick stream,
// create requested children, drop finished streams, top up to the target,
// then hand each remaining stream's snapshot to the renderer. Renderer
// errors abort the tick and propagate unmodified.
func (f *Field) Tick(dt float64, nowMS int64) error {
	dt *= f.speedScale

	// Children appended below must not be updated or spawn-checked within
	// the same tick, so iterate a snapshot of the pre-tick set by index.
	pre := f.streams
	for _, s := range pre {
		s.Update(dt)
	}
	for _, s := range pre {
		if !s.WantsSpawn() {
			continue
		}
		child := collatz.Step(s.Value())
		col := f.alloc.Pick(nowMS, s.Column())
		f.add(newStream(&f.cfg, child, col, f.streamSpeed()))
		f.stats.Children++
		s.ConsumeSpawnRequest()
	}

	kept := f.streams[:0]
	for _, s := range f.streams {
		if s.State() == StateDone {
			f.stats.Removed++
			if f.cfg.Trigger == TriggerIdle {
				f.scheduleReseed(s.Column(), nowMS)
			}
			continue
		}
		kept = append(kept, s)
	}
	f.streams = kept

	f.topUp(nowMS)

	if len(f.streams) > f.stats.Peak {
		f.stats.Peak = len(f.streams)
	}

	if f.renderer != nil {
		for _, s := range f.streams {
			if err := f.renderer.DrawStream(s.Snapshot()); err != nil {
				return err
			}
		}
	}
	return nil
}

// topUp keeps the active count at the target. Scheduled idle reseeds count
// toward the target so the randomized wait is not defeated by reseeding.
func (f *Field) topUp(nowMS int64) {
	if f.cfg.Trigger == TriggerIdle {
		due := f.pending[:0]
		for _, p := range f.pending {
			if nowMS >= p.dueMS {
				f.seedAt(p.column, nowMS)
				continue
			}
			due = append(due, p)
		}
		f.pending = due
		for len(f.streams)+len(f.pending) < f.target {
			f.seed(nowMS)
		}
		return
	}
	for len(f.streams) < f.target {
		f.seed(nowMS)
	}
}

// seed creates a new stream at an allocator-chosen column.
func (f *Field) seed(nowMS int64) {
	f.seedAt(-1, nowMS)
}

// seedAt creates a new stream, either at the given column or, when col is
// negative, at one chosen by the allocator.
func (f *Field) seedAt(col int, nowMS int64) {
	if col < 0 {
		col = f.alloc.Pick(nowMS, -1)
	} else {
		f.alloc.Claim(col, nowMS)
	}
	f.add(newStream(&f.cfg, f.seedValue(), col, f.streamSpeed()))
	f.stats.Seeds++
}

// seedValue draws a fresh start value: the fixed start when configured,
// otherwise a random magnitude in the configured digit range.
func (f *Field) seedValue() *big.Int {
	s := f.cfg.FixedStart
	if s == "" {
		s = f.rng.DigitString(f.cfg.MinDigits, f.cfg.MaxDigits)
	}
	// The string is digits-only by validation or by construction.
	n, _ := new(big.Int).SetString(s, 10)
	return n
}

// streamSpeed applies the configured per-stream jitter.
func (f *Field) streamSpeed() float64 {
	j := f.cfg.SpeedJitter
	if j == 0 {
		return f.cfg.RowsPerSec
	}
	return f.cfg.RowsPerSec * (1 + j*(2*f.rng.Float64()-1))
}

func (f *Field) scheduleReseed(col int, nowMS int64) {
	span := f.cfg.IdleMaxMS - f.cfg.IdleMinMS
	wait := f.cfg.IdleMinMS
	if span > 0 {
		wait += f.rng.Int64N(span + 1)
	}
	f.pending = append(f.pending, pendingSeed{dueMS: nowMS + wait, column: col})
}

func (f *Field) add(s *Stream) {
	if f.cfg.Starts != nil {
		f.cfg.Starts.Printf("start: %s", s.Value())
	}
	f.streams = append(f.streams, s)
}
