package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Int64N returns a random int64 in [0, n).
func (r *RNG) Int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return r.r.Int64N(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// DigitString returns a random decimal integer rendered as a string. The
// length is uniform in [minDigits, maxDigits] and the leading digit is never
// zero, so the value has exactly the drawn number of digits.
func (r *RNG) DigitString(minDigits, maxDigits int) string {
	if minDigits < 1 {
		minDigits = 1
	}
	if maxDigits < minDigits {
		maxDigits = minDigits
	}
	k := minDigits + r.r.IntN(maxDigits-minDigits+1)
	buf := make([]byte, k)
	buf[0] = byte('1' + r.r.IntN(9))
	for i := 1; i < k; i++ {
		buf[i] = byte('0' + r.r.IntN(10))
	}
	return string(buf)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
