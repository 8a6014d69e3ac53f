package rain

import (
	"github.com/lixenwraith/digital-rain/constants"
)

// rollGranularity converts probability rolls into integer draws
const rollGranularity = 1 << 20

// Source produces uniformly distributed indices in [0, n).
// *math/rand.Rand satisfies it; tests substitute a seeded instance.
type Source interface {
	Intn(n int) int
}

// Sampler draws random glyphs and trail parameters from an immutable
// character set. It holds no mutable state of its own; all randomness
// flows through the Source it was constructed with.
type Sampler struct {
	src     Source
	charset []rune
}

// NewSampler creates a sampler over the given non-empty character set.
// The set is validated at configuration time, not here.
func NewSampler(src Source, charset []rune) *Sampler {
	return &Sampler{src: src, charset: charset}
}

// Rune returns one glyph drawn uniformly from the character set.
func (s *Sampler) Rune() rune {
	return s.charset[s.src.Intn(len(s.charset))]
}

// TrailParams returns a randomized visible length and fall speed for a
// new trail on a screen of the given height. Length is uniform between
// MinTrailLength and the screen height, clamped for short screens.
func (s *Sampler) TrailParams(height int) (length, speed int) {
	lo := constants.MinTrailLength
	if lo > height {
		lo = height
	}
	length = lo + s.src.Intn(height-lo+1)

	speed = constants.BaseSpeed
	if s.src.Intn(100) < constants.FastSpeedPercent {
		speed = constants.FastSpeed
	}
	return length, speed
}

// Roll returns true with probability p.
func (s *Sampler) Roll(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return float64(s.src.Intn(rollGranularity)) < p*rollGranularity
}
