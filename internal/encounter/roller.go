package encounter

import "math/rand"

// Roller picks the amount an encounter actually applies for a base value.
type Roller interface {
	Roll(base, spread int) int
}

// FixedRoller always returns the base value. This is the default: every
// encounter has the same outcome every time it is chosen.
type FixedRoller struct{}

// Roll returns base.
func (FixedRoller) Roll(base, _ int) int { return base }

// RandRoller rolls uniformly within base +/- spread using a seeded source,
// so equal seeds reproduce equal sessions.
type RandRoller struct {
	rng *rand.Rand
}

// NewRandRoller creates a roller seeded with seed.
func NewRandRoller(seed int64) *RandRoller {
	return &RandRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a value in [base-spread, base+spread], never below 1.
// A non-positive base or spread is returned unchanged.
func (r *RandRoller) Roll(base, spread int) int {
	if base <= 0 || spread <= 0 {
		return base
	}
	v := base - spread + r.rng.Intn(2*spread+1)
	if v < 1 {
		v = 1
	}
	return v
}
