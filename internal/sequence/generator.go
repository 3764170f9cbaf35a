package sequence

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Default bounds of generated values
const (
	DefaultMin = -100
	DefaultMax = 100
)

// ErrInvalidRange is returned when the lower bound exceeds the upper one
var ErrInvalidRange = errors.New("invalid range")

// Generator produces uniformly distributed integers in [Min, Max]
type Generator struct {
	Min int
	Max int
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the current time
func NewGenerator(lo, hi int) (*Generator, error) {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithSource(lo, hi, rand.NewPCG(seed, seed>>1))
}

// NewGeneratorWithSource creates a generator drawing from src
func NewGeneratorWithSource(lo, hi int, src rand.Source) (*Generator, error) {
	if lo > hi {
		return nil, fmt.Errorf("generator [%d, %d]: %w", lo, hi, ErrInvalidRange)
	}
	return &Generator{Min: lo, Max: hi, rng: rand.New(src)}, nil
}

// Next returns the next value in [Min, Max]
func (g *Generator) Next() int {
	span := uint64(g.Max) - uint64(g.Min) + 1
	if span == 0 {
		// [MinInt, MaxInt] on 64-bit covers every value
		return int(g.rng.Uint64())
	}
	return g.Min + int(g.rng.Uint64N(span))
}
