package rain

import "math"

// Snapshot is the per-stream view handed to the renderer once per tick.
// Visible aliases the stream's buffer and is only valid until the next Tick.
type Snapshot struct {
	Visible []byte  // emitted digits, newest first; index 0 is the head
	HeadRow float64 // fractional row of the head
	Column  int
}

// Renderer consumes stream snapshots. Implementations live outside the
// engine; errors they return abort the tick unmodified.
type Renderer interface {
	DrawStream(Snapshot) error
}

// Brightness is the vertical intensity ramp the renderer applies per digit:
// 0.35 at the top edge rising to 1.0 at the bottom.
func Brightness(y, height float64) float64 {
	if height <= 0 {
		return 1
	}
	t := y / height
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return 0.35 + 0.65*math.Pow(t, 1.2)
}

// Decay is the trail falloff for a digit dist rows behind the head. The
// head itself (dist 0) stays at full intensity; the falloff reaches zero at
// tailRows and is shaped by the configured exponent.
func Decay(dist, tailRows int, exp float64) float64 {
	if dist <= 0 {
		return 1
	}
	if tailRows <= 0 {
		return 0
	}
	d := 1 - float64(dist)/float64(tailRows)
	if d <= 0 {
		return 0
	}
	return math.Pow(d, exp)
}
