package rain

import "collatz-rain/internal/core"

// neverUsed is the lastUsed sentinel, far enough in the past that every
// column is eligible on the first pick.
const neverUsed = -10_000_000

// Allocator hands out screen columns for new streams, enforcing a cooldown
// so the same column is not reused too soon. Pick never fails: under full
// cooldown saturation it falls back to the least-recently-used column.
type Allocator struct {
	cooldownMS int64
	lastUsed   []int64
	rng        *core.RNG
	scratch    []int
}

// NewAllocator creates an allocator for cols columns. cols below 1 is
// clamped to 1.
func NewAllocator(cols int, cooldownMS int64, rng *core.RNG) *Allocator {
	if cols < 1 {
		cols = 1
	}
	if cooldownMS < 0 {
		cooldownMS = 0
	}
	last := make([]int64, cols)
	for i := range last {
		last[i] = neverUsed
	}
	return &Allocator{
		cooldownMS: cooldownMS,
		lastUsed:   last,
		rng:        rng,
		scratch:    make([]int, 0, cols),
	}
}

// Cols returns the number of columns managed by the allocator.
func (a *Allocator) Cols() int { return len(a.lastUsed) }

// Pick returns a column for a new stream and records nowMS as its last use.
// Columns equal to avoid are skipped whenever more than one column exists;
// pass a negative avoid to allow any column. Cooled-down candidates are
// chosen uniformly at random; with none available the least-recently-used
// column wins, ties broken by the lowest column index.
func (a *Allocator) Pick(nowMS int64, avoid int) int {
	skip := avoid
	if len(a.lastUsed) == 1 {
		skip = -1
	}

	eligible := a.scratch[:0]
	for c := range a.lastUsed {
		if c == skip {
			continue
		}
		if nowMS-a.lastUsed[c] >= a.cooldownMS {
			eligible = append(eligible, c)
		}
	}

	var choice int
	if len(eligible) > 0 {
		choice = eligible[a.rng.IntN(len(eligible))]
	} else {
		choice = -1
		var best int64
		for c := range a.lastUsed {
			if c == skip {
				continue
			}
			age := nowMS - a.lastUsed[c]
			if choice < 0 || age > best {
				choice = c
				best = age
			}
		}
	}
	a.lastUsed[choice] = nowMS
	return choice
}

// Claim records nowMS as the last use of col without choosing. Idle-mode
// reseeds use it because their column is fixed by the owning slot.
func (a *Allocator) Claim(col int, nowMS int64) {
	if col >= 0 && col < len(a.lastUsed) {
		a.lastUsed[col] = nowMS
	}
}
