// Package collatz implements the Collatz step on arbitrary-precision
// integers. Seed values routinely exceed 64-bit range, so all arithmetic
// stays on big.Int; decimal strings are for rendering only.
package collatz

import "math/big"

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
)

// Step returns the Collatz successor of n: n/2 when n is even, 3n+1 when
// odd. n must be positive; the result for non-positive input is undefined.
// The argument is not modified.
func Step(n *big.Int) *big.Int {
	next := new(big.Int)
	if n.Bit(0) == 0 {
		return next.Rsh(n, 1)
	}
	next.Mul(n, three)
	return next.Add(next, one)
}

// Sequence lazily walks one Collatz chain from a start value down to 1.
// It is not restartable; build a new Sequence for a new chain.
type Sequence struct {
	cur  *big.Int
	done bool
}

// NewSequence returns a Sequence that yields start first. Convergence to 1
// is assumed, not verified.
func NewSequence(start *big.Int) *Sequence {
	return &Sequence{cur: new(big.Int).Set(start)}
}

// Next returns the next term and true, or nil and false once the chain has
// yielded 1. The returned value is a copy owned by the caller.
func (s *Sequence) Next() (*big.Int, bool) {
	if s.done {
		return nil, false
	}
	term := new(big.Int).Set(s.cur)
	if s.cur.Cmp(one) == 0 {
		s.done = true
	} else {
		s.cur = Step(s.cur)
	}
	return term, true
}
