package rain

import "math/big"

// State is the lifecycle phase of a stream.
type State uint8

const (
	// StateEmitting means digits are still being pushed into the buffer.
	StateEmitting State = iota
	// StateDraining means all digits are out and the trail is leaving.
	StateDraining
	// StateDone is terminal: the buffer is empty and the field removes the
	// stream at the end of the tick.
	StateDone
)

// Stream animates one integer's decimal digits falling down a fixed column.
// The integer itself stays a big.Int; the digit string exists for rendering
// only.
type Stream struct {
	value  *big.Int
	digits string
	column int

	headRow    float64
	rowAccum   float64
	gapLeft    int
	emitCursor int
	visible    []byte // newest first; index 0 is the head

	state          State
	spawnRequested bool

	rowsPerSec float64
	gapRows    int
	trigger    TriggerKind
	threshold  float64
	cull       CullKind
	cellPx     int
	heightPx   int
	maxVisible int
}

// newStream builds a stream for value at the given column. speed carries any
// per-stream jitter already applied by the caller.
func newStream(cfg *Config, value *big.Int, column int, speed float64) *Stream {
	digits := value.String()
	maxVisible := cfg.RowsFit() + cfg.TailSlackRows
	if maxVisible < 1 {
		maxVisible = 1
	}
	return &Stream{
		value:      value,
		digits:     digits,
		column:     column,
		headRow:    cfg.HeadStartRow,
		visible:    make([]byte, 0, min(len(digits), maxVisible)),
		rowsPerSec: speed,
		gapRows:    cfg.DigitGapRows,
		trigger:    cfg.Trigger,
		threshold:  cfg.SpawnThreshold,
		cull:       cfg.Cull,
		cellPx:     cfg.CellPx,
		heightPx:   cfg.Height,
		maxVisible: maxVisible,
	}
}

// Value returns the integer the stream is rendering.
func (s *Stream) Value() *big.Int { return s.value }

// Column returns the stream's fixed column.
func (s *Stream) Column() int { return s.column }

// State reports the current lifecycle phase.
func (s *Stream) State() State { return s.state }

// Update advances the stream by dt seconds: the head moves, whole rows
// crossed emit digits (respecting the inter-digit gap), and the configured
// cull policy trims the tail.
func (s *Stream) Update(dt float64) {
	if s.state == StateDone {
		return
	}

	delta := s.rowsPerSec * dt
	s.headRow += delta
	s.rowAccum += delta

	for s.rowAccum >= 1 {
		s.rowAccum--
		if s.state != StateEmitting {
			continue
		}
		if s.gapLeft > 0 {
			s.gapLeft--
			continue
		}
		s.emit(s.digits[s.emitCursor])
		s.emitCursor++
		s.gapLeft = s.gapRows
		if s.emitCursor == len(s.digits) {
			s.state = StateDraining
		}
	}

	s.cullTail()

	if s.state == StateDraining && len(s.visible) == 0 {
		s.state = StateDone
	}
}

// emit pushes ch to the front of the visible buffer, dropping the oldest
// entry when the buffer cap is reached.
func (s *Stream) emit(ch byte) {
	if len(s.visible) < s.maxVisible {
		s.visible = append(s.visible, 0)
	}
	copy(s.visible[1:], s.visible)
	s.visible[0] = ch
}

// tailY returns the pixel y of the oldest visible digit.
func (s *Stream) tailY() float64 {
	tail := len(s.visible) - 1
	return (s.headRow - float64(tail)) * float64(s.cellPx)
}

func (s *Stream) cullTail() {
	cell := float64(s.cellPx)
	h := float64(s.heightPx)
	switch s.cull {
	case CullTop:
		// A digit more than rowsFit+1 rows behind the head sits above the
		// top edge by more than one row once the trail unrolls on screen.
		limit := s.heightPx/s.cellPx + 2
		for len(s.visible) > limit {
			s.visible = s.visible[:len(s.visible)-1]
		}
		// A draining trail slides downward as one block and can no longer
		// clear via the top rule; drop digits that have fallen past the
		// bottom so the stream still finishes.
		if s.state == StateDraining {
			for len(s.visible) > 0 && s.tailY() >= h+cell {
				s.visible = s.visible[:len(s.visible)-1]
			}
		}
	case CullBottom:
		for len(s.visible) > 0 && s.tailY() >= h {
			s.visible = s.visible[:len(s.visible)-1]
		}
	case CullWhole:
		if s.state == StateDraining && len(s.visible) > 0 && s.tailY() > h+cell {
			s.visible = s.visible[:0]
		}
	}
}

// WantsSpawn reports whether the stream requests a child. It stays false
// forever once ConsumeSpawnRequest has been called.
func (s *Stream) WantsSpawn() bool {
	if s.spawnRequested || s.state == StateDone {
		return false
	}
	switch s.trigger {
	case TriggerCount:
		return float64(s.emitCursor) >= s.threshold
	case TriggerPosition:
		return s.headRow*float64(s.cellPx) >= s.threshold*float64(s.heightPx)
	}
	return false
}

// ConsumeSpawnRequest marks the spawn request as taken; it fires at most
// once per stream.
func (s *Stream) ConsumeSpawnRequest() {
	s.spawnRequested = true
}

// Snapshot returns the renderable view of the stream. The digit slice
// aliases internal storage and is valid until the next Update.
func (s *Stream) Snapshot() Snapshot {
	return Snapshot{Visible: s.visible, HeadRow: s.headRow, Column: s.column}
}
