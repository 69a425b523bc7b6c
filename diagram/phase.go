// File: phase.go
// Role: Phase value type (rational multiples of π, taken mod 2π).
// Determinism:
//   - Every Phase is kept in canonical form: 0 <= num < 2*den, gcd(num, den) == 1, den > 0.
//   - The zero value is the phase 0.
// Concurrency:
//   - Phase is an immutable value; safe to copy and share.

package diagram

import (
	"fmt"
	"math/big"
)

// Phase is an angle num/den·π reduced modulo 2π.
// Equal phases compare equal with ==.
type Phase struct {
	num int64
	den int64 // 0 only in the zero value, read as 1
}

// NewPhase returns the canonical phase num/den·π.
// Panics if den == 0, as big.NewRat does; callers parsing external input
// must reject zero denominators first.
func NewPhase(num, den int64) Phase {
	if den == 0 {
		panic("diagram: phase with zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	// Stage 1: reduce the fraction.
	g := gcd(abs64(num), den)
	num, den = num/g, den/g
	// Stage 2: fold into [0, 2).
	period := 2 * den
	num %= period
	if num < 0 {
		num += period
	}
	if num == 0 {
		return Phase{}
	}

	return Phase{num: num, den: den}
}

// PhaseFromRat converts r (in units of π) to a canonical Phase.
// Returns an error when r does not fit in int64 after reduction.
func PhaseFromRat(r *big.Rat) (Phase, error) {
	// fold through big arithmetic so huge numerators reduce before narrowing
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	num.Mod(num, new(big.Int).Mul(den, big.NewInt(2)))
	if !num.IsInt64() || !den.IsInt64() {
		return Phase{}, fmt.Errorf("diagram: phase %s out of range", r.RatString())
	}

	return NewPhase(num.Int64(), den.Int64()), nil
}

// Pi is the phase π.
func Pi() Phase { return Phase{num: 1, den: 1} }

// Num returns the canonical numerator.
func (p Phase) Num() int64 { return p.num }

// Den returns the canonical denominator (1 for the zero phase).
func (p Phase) Den() int64 {
	if p.den == 0 {
		return 1
	}

	return p.den
}

// IsZero reports whether p is 0 mod 2π.
func (p Phase) IsZero() bool { return p.num == 0 }

// Add returns p + q.
func (p Phase) Add(q Phase) Phase {
	pd, qd := p.Den(), q.Den()
	return NewPhase(p.num*qd+q.num*pd, pd*qd)
}

// Neg returns -p.
func (p Phase) Neg() Phase { return NewPhase(-p.num, p.Den()) }

// Rat returns p as a rational in units of π.
func (p Phase) Rat() *big.Rat { return big.NewRat(p.num, p.Den()) }

// Float returns p in units of π as a float64.
func (p Phase) Float() float64 { return float64(p.num) / float64(p.Den()) }

// String renders p with a π symbol, for example "0", "π", "3π/4", "π/2".
func (p Phase) String() string {
	switch {
	case p.num == 0:
		return "0"
	case p.num == 1 && p.Den() == 1:
		return "π"
	case p.num == 1:
		return fmt.Sprintf("π/%d", p.den)
	case p.Den() == 1:
		return fmt.Sprintf("%dπ", p.num)
	default:
		return fmt.Sprintf("%dπ/%d", p.num, p.den)
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}

	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
