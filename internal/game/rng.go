package game

import (
	"math/rand/v2"
	"time"

	perlin "github.com/aquilax/go-perlin"
)

// Perlin parameters: alpha is the per-octave weight, beta the frequency
// step, octaves the number of summed layers.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Random is the single source of randomness for a Sim. Every widget draws
// from it, so one seed reproduces a whole session.
type Random struct {
	rng   *rand.Rand
	noise *perlin.Perlin
}

// NewRandom creates a seeded random source.
func NewRandom(seed int64) *Random {
	return &Random{
		rng:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x5eed)),
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Rand exposes the underlying generator for code that takes a *rand.Rand.
func (r *Random) Rand() *rand.Rand { return r.rng }

// Float returns a value in [0, 1).
func (r *Random) Float() float64 { return r.rng.Float64() }

// Range returns a value in [lo, hi).
func (r *Random) Range(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// IntN returns a value in [0, n). n <= 0 yields 0.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Chance reports true with probability p.
func (r *Random) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Sign returns -1 or 1 with equal odds.
func (r *Random) Sign() float64 {
	if r.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Duration returns a uniform duration in [lo, hi].
func (r *Random) Duration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.rng.Int64N(int64(hi-lo)+1))
}

// Noise1 returns coherent noise in [0, 1].
func (r *Random) Noise1(x float64) float64 {
	return unitNoise(r.noise.Noise1D(x))
}

// Noise2 returns coherent noise in [0, 1].
func (r *Random) Noise2(x, y float64) float64 {
	return unitNoise(r.noise.Noise2D(x, y))
}

// Noise3 returns coherent noise in [0, 1].
func (r *Random) Noise3(x, y, z float64) float64 {
	return unitNoise(r.noise.Noise3D(x, y, z))
}

func unitNoise(v float64) float64 {
	return clamp01(v*0.5 + 0.5)
}

// Pick returns a uniformly chosen element of xs. xs must not be empty.
func Pick[T any](r *Random, xs []T) T {
	return xs[r.rng.IntN(len(xs))]
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// remap maps v from [a0, a1] to [b0, b1] without clamping.
func remap(v, a0, a1, b0, b1 float64) float64 {
	return b0 + (v-a0)/(a1-a0)*(b1-b0)
}
