// Package stats computes the aggregate values shown by the observer widgets.
// Every function is a single pass over the slice and keeps no state.
package stats

import (
	"math/big"
	"strconv"
)

// Progression is the result of an arithmetic progression check
type Progression struct {
	Known bool // false when there are fewer than two values
	OK    bool // consecutive differences are all equal to a[1] - a[0]
	// Step is a[1] - a[0]; it has wrapped when StepOverflow is set
	Step         int
	StepOverflow bool
	// StepText is the exact decimal a[1] - a[0]
	StepText string
}

// Last returns the final element
func Last(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return values[len(values)-1], true
}

// Mean returns the arithmetic mean, accumulated in floating point
func Mean(values []int) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), true
}

// Max returns the largest element
func Max(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m, true
}

// Min returns the smallest element
func Min(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m, true
}

// CheckProgression reports whether values form an arithmetic progression
func CheckProgression(values []int) Progression {
	if len(values) < 2 {
		return Progression{}
	}
	step, exact := subtract(values[1], values[0])
	p := Progression{
		Known:        true,
		Step:         step,
		StepOverflow: !exact,
		StepText:     stepText(values[1], values[0], step, exact),
	}
	for i := 2; i < len(values); i++ {
		// two wrapped differences with the same bits wrapped the same way
		if d, ok := subtract(values[i], values[i-1]); d != step || ok != exact {
			return p
		}
	}
	p.OK = true
	return p
}

// subtract returns a - b and whether it fit in an int
func subtract(a, b int) (int, bool) {
	d := a - b
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		return d, false
	}
	return d, true
}

func stepText(a, b, step int, exact bool) string {
	if exact {
		return strconv.Itoa(step)
	}
	return new(big.Int).Sub(big.NewInt(int64(a)), big.NewInt(int64(b))).String()
}
