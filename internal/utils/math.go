package utils

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource is the randomness every engine draws from. *rand.Rand
// satisfies it, so tests can pass a seeded generator or a ScriptedSource.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewSeededSource returns a deterministic source. A zero seed seeds from the clock.
func NewSeededSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(src RandomSource, min, max int) int {
	if min >= max {
		return min
	}
	return src.Intn(max-min+1) + min
}

// RandomFloatRange returns a random float in [min, max)
func RandomFloatRange(src RandomSource, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Roll returns true with the given probability
func Roll(src RandomSource, probability float64) bool {
	return src.Float64() < probability
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
