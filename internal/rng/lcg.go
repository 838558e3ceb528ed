// Package rng provides the deterministic integer generator used to place
// hazards. It is a plain linear congruential generator over 16 bits:
//
//	X(n+1) = (multiplier * X(n) + increment) mod 65536
//
// The same (multiplier, increment) pair always yields the same sequence,
// which makes board layouts reproducible. It is not suitable for anything
// that needs unpredictability.
package rng

import (
	"errors"
	"fmt"
)

// Generator parameters. The range is fixed to 16 bits so documented
// sequences stay reproducible.
const (
	Modulus  = 65536
	MaxValue = Modulus - 1
	Seed     = 128

	DefaultMultiplier = 7
	DefaultIncrement  = 1
)

// ErrInvalidParameter is returned for out-of-range constructor or draw arguments.
var ErrInvalidParameter = errors.New("rng: invalid parameter")

// Source produces bounded integers. The game engine depends on this
// rather than on *Generator so tests can script draws.
type Source interface {
	NextValue(from, to int) (int, error)
}

// Generator is a 16-bit linear congruential generator.
type Generator struct {
	multiplier int
	increment  int
	current    int
	draws      int64
}

// New creates a generator. The multiplier must pass IsPrime and both
// parameters must lie in [1, Modulus).
func New(multiplier, increment int) (*Generator, error) {
	if multiplier < 1 || multiplier >= Modulus || increment < 1 || increment >= Modulus {
		return nil, fmt.Errorf("%w: multiplier %d or increment %d out of range", ErrInvalidParameter, multiplier, increment)
	}
	if !IsPrime(multiplier) {
		return nil, fmt.Errorf("%w: multiplier %d is not prime", ErrInvalidParameter, multiplier)
	}

	return &Generator{
		multiplier: multiplier,
		increment:  increment,
		current:    (Seed*multiplier + increment) % Modulus,
	}, nil
}

// NewDefault creates a generator with DefaultMultiplier and DefaultIncrement.
func NewDefault() *Generator {
	g, err := New(DefaultMultiplier, DefaultIncrement)
	if err != nil {
		// Defaults are constants that always validate.
		panic(err)
	}
	return g
}

// NextValue advances the sequence and returns a value in
// [min(from, to), min(from, to)+|to-from|).
// Reversed bounds select the same range, so NextValue(20, 10) draws from
// [10, 20) and never returns 20.
// The recurrence is applied on every call, including the first.
func (g *Generator) NextValue(from, to int) (int, error) {
	span := abs(to - from)
	if span < 2 {
		return 0, fmt.Errorf("%w: range [%d, %d) too narrow", ErrInvalidParameter, from, to)
	}

	g.current = abs((g.current*g.multiplier + g.increment) % Modulus)
	g.draws++

	return min(from, to) + g.current%span, nil
}

// Next draws over the full range [0, MaxValue).
func (g *Generator) Next() (int, error) {
	return g.NextValue(0, MaxValue)
}

// Multiplier returns the multiplier the generator was built with.
func (g *Generator) Multiplier() int {
	return g.multiplier
}

// Increment returns the increment the generator was built with.
func (g *Generator) Increment() int {
	return g.increment
}

// Draws returns how many values have been drawn since construction.
func (g *Generator) Draws() int64 {
	return g.draws
}

// IsPrime reports whether no integer in [2, n/2] divides n.
// Values below 4 have no candidate divisors and therefore pass, 1 included.
func IsPrime(n int) bool {
	for i := 2; i <= n/2; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
